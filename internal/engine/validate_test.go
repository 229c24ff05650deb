package engine

import (
	"errors"
	"testing"
)

func TestValidate_Default(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
}

func TestValidate_UnknownCategory(t *testing.T) {
	tests := []struct {
		field string
		mod   func(*Profile)
	}{
		{"solo_duration", func(p *Profile) { p.SoloDuration = "forever" }},
		{"gender", func(p *Profile) { p.Gender = "" }},
		{"activity_range", func(p *Profile) { p.ActivityRange = "moon" }},
		{"proactiveness", func(p *Profile) { p.Proactiveness = "daily" }},
		{"body_care", func(p *Profile) { p.BodyCare = "marathon" }},
		{"activity2", func(p *Profile) { p.Activity2 = "chess" }},
		{"novelty_tier", func(p *Profile) { p.NoveltyTier = "always" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := DefaultProfile()
			tt.mod(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("error %v does not wrap ErrInvalidProfile", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	tests := []struct {
		field string
		mod   func(*Profile)
	}{
		{"appearance_self", func(p *Profile) { p.AppearanceSelf = 0 }},
		{"appearance_others", func(p *Profile) { p.AppearanceOthers = 11 }},
		{"network_size", func(p *Profile) { p.NetworkSize = 51 }},
		{"network_quality", func(p *Profile) { p.NetworkQuality = 0 }},
		{"work_gender_ratio", func(p *Profile) { p.WorkGenderRatio = 101 }},
		{"confidence", func(p *Profile) { p.Confidence = 11 }},
		{"high_filters", func(p *Profile) { p.HighFilters = -1 }},
		{"low_filters", func(p *Profile) { p.LowFilters = 11 }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := DefaultProfile()
			tt.mod(&p)

			var ve *ValidationError
			if err := p.Validate(); !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}

			if err := p.Clamp().Validate(); err != nil {
				t.Errorf("clamped profile still invalid: %v", err)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	p := DefaultProfile()
	p.AppearanceSelf = -3
	p.AppearanceOthers = 42
	p.NetworkSize = 500
	p.WorkGenderRatio = -10
	p.Resilience = 9
	p.Confidence = 0
	p.MediumFilters = 99

	c := p.Clamp()
	if c.AppearanceSelf != 1 || c.AppearanceOthers != 10 {
		t.Errorf("appearance = %v/%v, want 1/10", c.AppearanceSelf, c.AppearanceOthers)
	}
	if c.NetworkSize != 50 {
		t.Errorf("NetworkSize = %d, want 50", c.NetworkSize)
	}
	if c.WorkGenderRatio != 0 {
		t.Errorf("WorkGenderRatio = %v, want 0", c.WorkGenderRatio)
	}
	if c.Resilience != 5 || c.Confidence != 1 || c.MediumFilters != 10 {
		t.Errorf("resilience/confidence/medium = %d/%d/%d, want 5/1/10", c.Resilience, c.Confidence, c.MediumFilters)
	}
	if p.NetworkSize != 500 {
		t.Error("Clamp modified the receiver")
	}
}

func TestNormalize(t *testing.T) {
	p := DefaultProfile()
	p.NetworkSize = 80

	got, err := Normalize(p)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.NetworkSize != 50 {
		t.Errorf("NetworkSize = %d, want 50", got.NetworkSize)
	}

	p.LivingEnv = "castle"
	if _, err := Normalize(p); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Normalize with bad living_env = %v, want ErrInvalidProfile", err)
	}
}

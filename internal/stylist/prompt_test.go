package stylist

import (
	"strings"
	"testing"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

func TestBuildSystemPrompt_FullProfile(t *testing.T) {
	height := 172
	weight := 64
	shape := "pear"
	gender := "female"

	p := &models.Profile{
		Name:             "Ananya",
		Location:         "Mumbai",
		Height:           &height,
		Weight:           &weight,
		BodyShape:        &shape,
		Gender:           &gender,
		FashionInterests: []string{"sarees", "streetwear"},
	}

	prompt := BuildSystemPrompt(p)

	for _, want := range []string{
		"You are Nova",
		"Name: Ananya",
		"Height 172cm, Weight 64kg",
		"Body Shape: pear",
		"Style Preferences: sarees, streetwear",
		"Location: Mumbai",
		"Gender: female",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildSystemPrompt_MissingFieldsFallBack(t *testing.T) {
	empty := ""
	p := &models.Profile{
		Name:      "Ravi",
		Location:  "Delhi",
		BodyShape: &empty, // present but blank still falls back
	}

	prompt := BuildSystemPrompt(p)

	for _, want := range []string{
		"Height unknowncm, Weight unknownkg",
		"Body Shape: not specified",
		"Style Preferences: not specified",
		"Gender: not specified",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing fallback %q:\n%s", want, prompt)
		}
	}
}

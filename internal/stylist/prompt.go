package stylist

import (
	"fmt"
	"strings"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

// BuildSystemPrompt renders the Nova persona around the caller's profile.
// Missing anthropometrics degrade to "unknown"/"not specified" rather
// than being omitted, so the model always sees the full field list.
func BuildSystemPrompt(p *models.Profile) string {
	height := "unknown"
	if p.Height != nil {
		height = fmt.Sprintf("%d", *p.Height)
	}

	weight := "unknown"
	if p.Weight != nil {
		weight = fmt.Sprintf("%d", *p.Weight)
	}

	bodyShape := "not specified"
	if p.BodyShape != nil && *p.BodyShape != "" {
		bodyShape = *p.BodyShape
	}

	gender := "not specified"
	if p.Gender != nil && *p.Gender != "" {
		gender = *p.Gender
	}

	interests := "not specified"
	if len(p.FashionInterests) > 0 {
		interests = strings.Join(p.FashionInterests, ", ")
	}

	return fmt.Sprintf(`You are Nova, an AI fashion stylist for Neural Threads platform.

User Profile Information:
- Name: %s
- Body Type: Height %scm, Weight %skg
- Body Shape: %s
- Style Preferences: %s
- Location: %s
- Gender: %s

Your Role:
- Provide personalized fashion advice based on their body measurements, style preferences, and location
- Suggest specific outfit combinations and explain why they work for their body type
- Consider climate and cultural preferences based on their location
- Be encouraging and positive while giving practical, actionable advice
- Ask relevant questions to better understand their needs

Communication Style:
- Friendly, professional, and encouraging
- Use fashion terminology appropriately but explain complex concepts
- Provide specific brand recommendations when relevant
- Consider budget-friendly options
- Always explain the reasoning behind your suggestions`,
		p.Name, height, weight, bodyShape, interests, p.Location, gender)
}

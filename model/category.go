package model

// Category describes one entry of the service category catalog.
// Descriptors are immutable for the duration of a search; the
// inference engine tokenizes "{Name} {Description}" when scoring
// token-set similarity against a query.
type Category struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCategories is the catalog shipped with the service. Callers
// may substitute their own catalog per request; nothing in the engine
// mutates it.
var DefaultCategories = []Category{
	{ID: "home", Name: "Home Services", Description: "Cleaning, plumbing, electrical & more"},
	{ID: "tech", Name: "Technical Services", Description: "IT support, networking, repairs"},
	{ID: "freelance", Name: "Freelance Digital", Description: "Design, development, writing"},
	{ID: "repair", Name: "Repair & Maintenance", Description: "Appliance, auto, furniture repair"},
	{ID: "education", Name: "Education & Tutoring", Description: "Academic, language, skill training"},
	{ID: "delivery", Name: "Delivery & Logistics", Description: "Courier, moving, transportation"},
	{ID: "health", Name: "Health & Personal Care", Description: "Fitness, wellness, beauty"},
	{ID: "business", Name: "Business & Consulting", Description: "Strategy, legal, finance"},
	{ID: "events", Name: "Event & Media", Description: "Photography, planning, DJ"},
	{ID: "ai", Name: "AI & Automation", Description: "AI solutions, chatbots, automation"},
	{ID: "security", Name: "Security Services", Description: "Surveillance, guards, cyber security"},
	{ID: "express", Name: "Express Services", Description: "Same-day urgent services"},
}

package model

// Topic identifies the conversational category that drives reply selection
type Topic string

// Rule topics, in the order the classifier evaluates them
const (
	TopicAppointment    Topic = "appointment-booking"
	TopicDocumentation  Topic = "documentation"
	TopicLeadQualify    Topic = "lead-qualification"
	TopicFinancing      Topic = "financing"
	TopicNeighborhood   Topic = "neighborhood"
	TopicLegal          Topic = "legal"
	TopicRenovation     Topic = "renovation"
	TopicFirstTimeBuyer Topic = "first-time-buyer"
	TopicSellingTips    Topic = "selling-tips"
	TopicLifeEvent      Topic = "life-event"
	TopicGreeting       Topic = "greeting"
	TopicPropertySearch Topic = "property-search"
	TopicMortgage       Topic = "mortgage-calculation"
	TopicVirtualTour    Topic = "virtual-tour"
	TopicValuation      Topic = "valuation"
	TopicLocalServices  Topic = "local-services"
	TopicInvestment     Topic = "investment"
	TopicFavorites      Topic = "favorites"
	TopicARVR           Topic = "ar-vr"
)

// Broader topics detected from category keywords when no rule matched
const (
	TopicPrice      Topic = "price"
	TopicLocation   Topic = "location"
	TopicFeatures   Topic = "features"
	TopicProcess    Topic = "process"
	TopicTime       Topic = "time"
	TopicComparison Topic = "comparison"
	TopicOpinion    Topic = "opinion"
)

// Sentinels
const (
	// TopicWelcome opens every new conversation
	TopicWelcome      Topic = "welcome"
	TopicUnclassified Topic = "unclassified"
	TopicFallback     Topic = "fallback"
)

// CategoryTopics lists the broader topics in detection order
var CategoryTopics = []Topic{
	TopicPrice,
	TopicLocation,
	TopicFeatures,
	TopicProcess,
	TopicTime,
	TopicComparison,
	TopicOpinion,
}

// String implements fmt.Stringer
func (t Topic) String() string {
	return string(t)
}

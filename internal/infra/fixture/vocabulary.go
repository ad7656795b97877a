package fixture

import "civic/internal/domain/entity"

// OfficialTypes is the closed set of offices an action can target.
var OfficialTypes = []string{
	"United States Representative",
	"United States Senator",
}

// KudosTexts are shown to a user after completing an action.
var KudosTexts = []string{
	"Keep it up! You're fighting for what's right.",
	"Keep being the change you wish to see in the world.",
	"You're making a difference.",
	"You did it. Good job!",
	"Thank you for taking action.",
	"The people united will never be divided. We're getting there together",
	"Step by step. We make the road by walking.",
}

// VerbsByCategory lists title verbs per action category.
var VerbsByCategory = map[entity.ActionCategory][]string{
	entity.ActionCategoryCall:  {"Speak Out", "Advocate", "Fight", "Act"},
	entity.ActionCategoryEmail: {"Write", "Advocate", "Speak Out", "Fight", "Act"},
	entity.ActionCategoryEvent: {"March", "Stand", "Rise Up", "Fight", "Act", "Community Meeting", "Workshop"},
}

// DefaultVerbs is used for categories without their own list.
var DefaultVerbs = []string{"Call", "Fight", "Act", "Stand", "Speak", "March"}

// IssuesByStance lists the issues an action can be framed around. The two lists are disjoint.
var IssuesByStance = map[entity.Stance][]string{
	entity.StanceSupport: {
		"Immigrant Rights", "Trans Rights", "Refugees", "Black Lives", "Economic Justice", "Peace",
		"Environmental Justice", "Clean Water", "Education", "Affordable Housing", "Reproductive Rights",
		"Universal Health Care",
	},
	entity.StanceOppose: {
		"the new Youth Jail", "White Supremacy", "Homophobia", "Racism", "Mass Incarceration",
		"Deportation", "Police Brutality", "the Dakota Access Pipeline",
	},
}

// VerbsFor returns the verb list of category, falling back to DefaultVerbs.
func VerbsFor(category entity.ActionCategory) []string {
	if verbs, ok := VerbsByCategory[category]; ok {
		return verbs
	}

	return DefaultVerbs
}

const (
	callScriptIntro = "Hello. My name is ____, and I am a constituent. I am calling today to ask you to "

	deviceIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"
)

var secondaryAddressPrefixes = []string{"Apt. ", "Suite "}

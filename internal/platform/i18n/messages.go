package i18n

// builtinMessages is the en-US source catalog. Keys mirror the objective and
// marker namespaces consumed by the mission package.
var builtinMessages = map[string]string{
	"objective.research":      "Research %s.",
	"objective.produce":       "Produce %s.",
	"objective.item":          "Obtain items: %d/%d %s.",
	"objective.coreitem":      "Deliver items to core: %d/%d %s.",
	"objective.build":         "Construct blocks: %d %s.",
	"objective.buildunit":     "Construct units: %d %s.",
	"objective.destroyunits":  "Destroy enemy units: %d.",
	"objective.destroyblock":  "Destroy the %s.",
	"objective.destroyblocks": "Destroy blocks: %d/%d %s.",
	"objective.command":       "Command any unit to move.",
	"objective.destroycore":   "Destroy the enemy core.",

	"objective.research.name":      "Research",
	"objective.produce.name":       "Produce",
	"objective.item.name":          "Item",
	"objective.coreitem.name":      "Core Item",
	"objective.buildcount.name":    "Build Count",
	"objective.unitcount.name":     "Unit Count",
	"objective.destroyunits.name":  "Destroy Units",
	"objective.timer.name":         "Timer",
	"objective.destroyblock.name":  "Destroy Block",
	"objective.destroyblocks.name": "Destroy Blocks",
	"objective.destroycore.name":   "Destroy Core",
	"objective.commandmode.name":   "Command Units",
	"objective.flag.name":          "Logic Flag",
}

package services

// Challenge plan rules. Deterministic: the same input always yields the
// same 30-day sequence.

type PlanInput struct {
	Gender     string
	PcosOrPcod bool
	Level      string
	Conditions []string
}

type PlanDay struct {
	Day   int    `json:"day"`
	Asana string `json:"asana"`
}

type Plan struct {
	Days []PlanDay `json:"days"`
}

const planLength = 30

var basePoses = []string{
	"Tadasana",
	"Adho Mukha Svanasana",
	"Virabhadrasana II",
	"Trikonasana",
	"Bhujangasana",
	"Setu Bandhasana",
	"Balasana",
}

var pcosPoses = []string{
	"Supta Baddha Konasana",
	"Setu Bandhasana",
	"Bhujangasana",
	"Adho Mukha Svanasana",
	"Balasana",
	"Viparita Karani",
	"Marjaryasana",
}

var thyroidPrefix = []string{"Sarvangasana", "Matsyasana"}

// BuildPlan selects the pose sequence for the caller's profile and
// cycles it across 30 days with wraparound indexing.
func BuildPlan(input PlanInput) Plan {
	list := basePoses
	if input.Gender == "female" && input.PcosOrPcod {
		list = pcosPoses
	}
	if containsCondition(input.Conditions, "thyroid") {
		prefixed := make([]string, 0, len(thyroidPrefix)+len(list))
		prefixed = append(prefixed, thyroidPrefix...)
		list = append(prefixed, list...)
	}

	switch input.Level {
	case "beginner":
		list = suffixAll(list, " (gentle)")
	case "advanced":
		list = suffixAll(list, " (advanced holds)")
	}

	days := make([]PlanDay, planLength)
	for i := 0; i < planLength; i++ {
		days[i] = PlanDay{Day: i + 1, Asana: list[i%len(list)]}
	}
	return Plan{Days: days}
}

func containsCondition(conditions []string, want string) bool {
	for _, c := range conditions {
		if c == want {
			return true
		}
	}
	return false
}

func suffixAll(list []string, suffix string) []string {
	out := make([]string, len(list))
	for i, name := range list {
		out[i] = name + suffix
	}
	return out
}

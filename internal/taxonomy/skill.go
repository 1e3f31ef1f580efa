package taxonomy

// Skill identifies one entry in the closed skill set. The same set doubles
// as the test category axis: a test's category names the skill it exercises.
type Skill string

const (
	SkillAlgorithms       Skill = "algorithms"
	SkillDataStructures   Skill = "data-structures"
	SkillSystemDesign     Skill = "system-design"
	SkillDatabases        Skill = "databases"
	SkillOperatingSystems Skill = "operating-systems"
	SkillNetworking       Skill = "networking"
	SkillMachineLearning  Skill = "machine-learning"
	SkillDataScience      Skill = "data-science"
	SkillBehavioral       Skill = "behavioral"
	SkillAptitude         Skill = "aptitude"
)

// AllSkills returns the closed skill set in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillAlgorithms,
		SkillDataStructures,
		SkillSystemDesign,
		SkillDatabases,
		SkillOperatingSystems,
		SkillNetworking,
		SkillMachineLearning,
		SkillDataScience,
		SkillBehavioral,
		SkillAptitude,
	}
}

// ValidSkill reports whether s belongs to the closed skill set.
func ValidSkill(s Skill) bool {
	switch s {
	case SkillAlgorithms, SkillDataStructures, SkillSystemDesign,
		SkillDatabases, SkillOperatingSystems, SkillNetworking,
		SkillMachineLearning, SkillDataScience, SkillBehavioral,
		SkillAptitude:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillAlgorithms:
		return "Algorithms"
	case SkillDataStructures:
		return "Data Structures"
	case SkillSystemDesign:
		return "System Design"
	case SkillDatabases:
		return "Databases"
	case SkillOperatingSystems:
		return "Operating Systems"
	case SkillNetworking:
		return "Networking"
	case SkillMachineLearning:
		return "Machine Learning"
	case SkillDataScience:
		return "Data Science"
	case SkillBehavioral:
		return "Behavioral"
	case SkillAptitude:
		return "Aptitude"
	default:
		return string(s)
	}
}

// QuantSkills is the skill subset driving the quant-trading career track.
func QuantSkills() []Skill {
	return []Skill{
		SkillAlgorithms,
		SkillDataStructures,
		SkillMachineLearning,
		SkillDataScience,
	}
}

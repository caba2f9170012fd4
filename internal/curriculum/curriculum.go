package curriculum

// Node is a curriculum topic vertex. Prereqs reference other node ids and
// are assumed to form a DAG; cycles are not defended against.
// swagger:model CurriculumNode
type Node struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Prereqs    []string `json:"prereqs"`
	Level      int      `json:"level"`
	Domain     string   `json:"domain"`
	Difficulty string   `json:"difficulty"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
}

// nodes is the static curriculum, loaded once at process start and
// immutable afterwards.
var nodes = []Node{
	{ID: "cs101", Label: "Intro to Computer Science", Prereqs: []string{}, Level: 1, Domain: "cs", Difficulty: "beginner", X: 120, Y: 80},
	{ID: "math101", Label: "Discrete Mathematics", Prereqs: []string{}, Level: 1, Domain: "math", Difficulty: "beginner", X: 420, Y: 80},
	{ID: "cs102", Label: "Programming Fundamentals", Prereqs: []string{"cs101"}, Level: 2, Domain: "cs", Difficulty: "beginner", X: 120, Y: 220},
	{ID: "web101", Label: "Web Development Basics", Prereqs: []string{"cs101"}, Level: 2, Domain: "web", Difficulty: "beginner", X: 300, Y: 220},
	{ID: "math201", Label: "Linear Algebra", Prereqs: []string{"math101"}, Level: 2, Domain: "math", Difficulty: "intermediate", X: 480, Y: 220},
	{ID: "ds101", Label: "Data Structures", Prereqs: []string{"cs102", "math101"}, Level: 3, Domain: "cs", Difficulty: "intermediate", X: 200, Y: 360},
	{ID: "db101", Label: "Databases and SQL", Prereqs: []string{"cs102"}, Level: 3, Domain: "data", Difficulty: "intermediate", X: 40, Y: 360},
	{ID: "algo201", Label: "Algorithms", Prereqs: []string{"ds101"}, Level: 4, Domain: "cs", Difficulty: "advanced", X: 160, Y: 500},
	{ID: "ml201", Label: "Machine Learning Foundations", Prereqs: []string{"ds101", "math201"}, Level: 4, Domain: "ai", Difficulty: "advanced", X: 380, Y: 500},
}

// Nodes returns the full static curriculum.
func Nodes() []Node {
	return nodes
}

// Find returns the node with the given id, or false.
func Find(id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Dependents returns the ids of nodes that list nodeID among their
// prerequisites. One hop only.
func Dependents(nodeID string) []string {
	var out []string
	for _, n := range nodes {
		for _, p := range n.Prereqs {
			if p == nodeID {
				out = append(out, n.ID)
				break
			}
		}
	}
	return out
}

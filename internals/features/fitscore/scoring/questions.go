package scoring

// Category: partisi tetap dari 10 pertanyaan.
type Category string

const (
	CategoryPerformance Category = "performance"
	CategoryEnergy      Category = "energy"
	CategoryCulture     Category = "culture"
)

// Question: entri katalog statis, immutable sejak process start.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Questions: katalog kanonik.
// Performance: Q1-Q4, Energy: Q5-Q7, Culture: Q8-Q10.
// Scoring engine bergantung pada partisi ini.
var Questions = []Question{
	// Performance (4 perguntas)
	{ID: 1, Text: "Como você avalia sua experiência profissional?", Category: CategoryPerformance},
	{ID: 2, Text: "Como você avalia a qualidade das suas entregas?", Category: CategoryPerformance},
	{ID: 3, Text: "Como você avalia suas habilidades técnicas?", Category: CategoryPerformance},
	{ID: 4, Text: "Como você avalia sua capacidade de resolução de problemas?", Category: CategoryPerformance},

	// Energy (3 perguntas)
	{ID: 5, Text: "Como você avalia sua disponibilidade para o trabalho?", Category: CategoryEnergy},
	{ID: 6, Text: "Como você lida com prazos apertados?", Category: CategoryEnergy},
	{ID: 7, Text: "Como você trabalha sob pressão?", Category: CategoryEnergy},

	// Culture (3 perguntas)
	{ID: 8, Text: "Como você se alinha aos valores da empresa LEGAL?", Category: CategoryCulture},
	{ID: 9, Text: "Como você avalia sua capacidade de colaboração?", Category: CategoryCulture},
	{ID: 10, Text: "Como você se dedica ao aprendizado contínuo?", Category: CategoryCulture},
}

const TotalQuestions = 10

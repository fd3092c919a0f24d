package persona

// builtin lists the personas shipped with the app
var builtin = []Persona{
	{
		ID:       "coffee-goblin",
		Name:     "Coffee Goblin",
		Mood:     "Wired, slightly feral",
		ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=200",
		StarterTodos: []string{
			"Brew a second pot of coffee",
			"Clear the inbox before 10am",
			"Water the desk plant",
		},
	},
	{
		ID:       "sleepy-sloth",
		Name:     "Sleepy Sloth",
		Mood:     "Low battery, big dreams",
		ImageURL: "https://images.unsplash.com/photo-1544979590-37e9b47eb705?w=200",
		StarterTodos: []string{
			"Drink a glass of water",
			"Take a 20 minute nap",
			"Water the desk plant",
		},
	},
	{
		ID:       "zen-otter",
		Name:     "Zen Otter",
		Mood:     "Calm and floating",
		ImageURL: "https://images.unsplash.com/photo-1585095595205-e68428a9e205?w=200",
		StarterTodos: []string{
			"Stretch for five minutes",
			"Write down three good things",
			"Tidy the desk",
		},
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

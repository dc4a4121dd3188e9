package chat

// Guided gospel presentation shown alongside the chat widget. The steps
// are static content, versioned with the code rather than the CMS so
// the chat prompt and the presentation never drift apart.

var gospelStepsES = []GospelStep{
	{
		Index:     1,
		Title:     "Dios te ama",
		Scripture: "Juan 3:16",
		Body:      "Porque de tal manera amó Dios al mundo, que ha dado a su Hijo unigénito, para que todo aquel que en él cree no se pierda, mas tenga vida eterna.",
	},
	{
		Index:     2,
		Title:     "Todos hemos pecado",
		Scripture: "Romanos 3:23",
		Body:      "Por cuanto todos pecaron, y están destituidos de la gloria de Dios.",
	},
	{
		Index:     3,
		Title:     "Cristo murió por ti",
		Scripture: "Romanos 5:8",
		Body:      "Mas Dios muestra su amor para con nosotros, en que siendo aún pecadores, Cristo murió por nosotros.",
	},
	{
		Index:     4,
		Title:     "Recíbelo hoy",
		Scripture: "Romanos 10:9",
		Body:      "Si confiesas con tu boca que Jesús es el Señor, y crees en tu corazón que Dios le levantó de los muertos, serás salvo.",
	},
}

var gospelStepsPT = []GospelStep{
	{
		Index:     1,
		Title:     "Deus te ama",
		Scripture: "João 3:16",
		Body:      "Porque Deus amou o mundo de tal maneira que deu o seu Filho unigênito, para que todo aquele que nele crê não pereça, mas tenha a vida eterna.",
	},
	{
		Index:     2,
		Title:     "Todos pecamos",
		Scripture: "Romanos 3:23",
		Body:      "Pois todos pecaram e carecem da glória de Deus.",
	},
	{
		Index:     3,
		Title:     "Cristo morreu por você",
		Scripture: "Romanos 5:8",
		Body:      "Mas Deus prova o seu amor para conosco em que, sendo nós ainda pecadores, Cristo morreu por nós.",
	},
	{
		Index:     4,
		Title:     "Receba-o hoje",
		Scripture: "Romanos 10:9",
		Body:      "Se com a tua boca confessares ao Senhor Jesus, e em teu coração creres que Deus o ressuscitou dentre os mortos, serás salvo.",
	},
}

// GospelSteps returns the presentation for a locale, falling back to
// Spanish for anything unrecognized.
func GospelSteps(locale string) []GospelStep {
	if locale == "pt" {
		return gospelStepsPT
	}
	return gospelStepsES
}

// GospelStepAt returns one step by its 1-based index.
func GospelStepAt(locale string, index int) (*GospelStep, error) {
	steps := GospelSteps(locale)
	if index < 1 || index > len(steps) {
		return nil, ErrStepNotFound
	}
	return &steps[index-1], nil
}

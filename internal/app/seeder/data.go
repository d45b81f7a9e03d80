package seeder

import "github.com/learnlux/learnlux-backend/internal/domain"

type topicData struct {
	Name        string
	Slug        string
	Description string
	ParentSlug  string
	Difficulty  domain.Difficulty
	Position    int
}

type vocabData struct {
	Luxembourgish string
	English       string
	TopicSlug     string
	Difficulty    domain.Difficulty
}

type phraseData struct {
	Luxembourgish string
	English       string
	TopicSlug     string
	Register      domain.Register
}

// sampleTopics is the starter curriculum. Parents must precede children.
var sampleTopics = []topicData{
	{"Basics", "basics", "Essential words and phrases for beginners", "", domain.DifficultyBeginner, 1},
	{"Greetings", "greetings", "Common greetings and farewells", "basics", domain.DifficultyBeginner, 2},
	{"Numbers", "numbers", "Numbers and counting", "basics", domain.DifficultyBeginner, 3},
	{"Colors", "colors", "Colors in Luxembourgish", "", domain.DifficultyBeginner, 4},
	{"Food & Drink", "food-drink", "Vocabulary for food and beverages", "", domain.DifficultyBeginner, 5},
	{"Family", "family", "Family members and relationships", "", domain.DifficultyBeginner, 6},
	{"Daily Life", "daily-life", "Common words for everyday situations", "", domain.DifficultyIntermediate, 7},
	{"Travel", "travel", "Vocabulary for getting around", "", domain.DifficultyIntermediate, 8},
}

var sampleVocabulary = []vocabData{
	{"Moien", "Hello", "greetings", domain.DifficultyBeginner},
	{"Äddi", "Goodbye", "greetings", domain.DifficultyBeginner},
	{"Merci", "Thank you", "greetings", domain.DifficultyBeginner},
	{"Wann ech gelift", "Please", "greetings", domain.DifficultyBeginner},
	{"Jo", "Yes", "basics", domain.DifficultyBeginner},
	{"Nee", "No", "basics", domain.DifficultyBeginner},

	{"eent", "one", "numbers", domain.DifficultyBeginner},
	{"zwee", "two", "numbers", domain.DifficultyBeginner},
	{"dräi", "three", "numbers", domain.DifficultyBeginner},
	{"véier", "four", "numbers", domain.DifficultyBeginner},
	{"fënnef", "five", "numbers", domain.DifficultyBeginner},
	{"sechs", "six", "numbers", domain.DifficultyBeginner},
	{"siwen", "seven", "numbers", domain.DifficultyBeginner},
	{"aacht", "eight", "numbers", domain.DifficultyBeginner},
	{"néng", "nine", "numbers", domain.DifficultyBeginner},
	{"zéng", "ten", "numbers", domain.DifficultyBeginner},

	{"rout", "red", "colors", domain.DifficultyBeginner},
	{"blo", "blue", "colors", domain.DifficultyBeginner},
	{"gréng", "green", "colors", domain.DifficultyBeginner},
	{"giel", "yellow", "colors", domain.DifficultyBeginner},
	{"schwaarz", "black", "colors", domain.DifficultyBeginner},
	{"wäiss", "white", "colors", domain.DifficultyBeginner},

	{"Brout", "bread", "food-drink", domain.DifficultyBeginner},
	{"Waasser", "water", "food-drink", domain.DifficultyBeginner},
	{"Mëllech", "milk", "food-drink", domain.DifficultyBeginner},
	{"Kaffi", "coffee", "food-drink", domain.DifficultyBeginner},
	{"Téi", "tea", "food-drink", domain.DifficultyBeginner},
	{"Äppel", "apple", "food-drink", domain.DifficultyBeginner},
	{"Fleesch", "meat", "food-drink", domain.DifficultyIntermediate},
	{"Geméis", "vegetables", "food-drink", domain.DifficultyIntermediate},

	{"Mamm", "mother", "family", domain.DifficultyBeginner},
	{"Papp", "father", "family", domain.DifficultyBeginner},
	{"Brudder", "brother", "family", domain.DifficultyBeginner},
	{"Schwëster", "sister", "family", domain.DifficultyBeginner},
	{"Kand", "child", "family", domain.DifficultyBeginner},
	{"Grousspapp", "grandfather", "family", domain.DifficultyIntermediate},
	{"Groussmamm", "grandmother", "family", domain.DifficultyIntermediate},

	{"Haus", "house", "daily-life", domain.DifficultyBeginner},
	{"Dësch", "table", "daily-life", domain.DifficultyBeginner},
	{"Stull", "chair", "daily-life", domain.DifficultyBeginner},
	{"Bett", "bed", "daily-life", domain.DifficultyBeginner},
	{"Fënster", "window", "daily-life", domain.DifficultyIntermediate},
	{"Dier", "door", "daily-life", domain.DifficultyIntermediate},

	{"Auto", "car", "travel", domain.DifficultyBeginner},
	{"Bus", "bus", "travel", domain.DifficultyBeginner},
	{"Zuch", "train", "travel", domain.DifficultyBeginner},
	{"Gare", "train station", "travel", domain.DifficultyIntermediate},
	{"Flughafen", "airport", "travel", domain.DifficultyIntermediate},
}

// samplePhrases are all seeded as advanced: phrases are answered by free
// text input, never multiple choice.
var samplePhrases = []phraseData{
	{"Wéi geet et?", "How are you?", "greetings", domain.RegisterInformal},
	{"Mir geet et gutt", "I am fine", "greetings", domain.RegisterNeutral},
	{"Wéi geet et Iech?", "How are you? (formal)", "greetings", domain.RegisterFormal},
	{"Ech si frou Iech kennenzeléieren", "Nice to meet you", "greetings", domain.RegisterFormal},
	{"Bis muer", "See you tomorrow", "greetings", domain.RegisterInformal},
	{"Schéinen Dag nach", "Have a nice day", "greetings", domain.RegisterNeutral},

	{"Wéi heescht Dir?", "What is your name? (formal)", "basics", domain.RegisterFormal},
	{"Ech heeschen...", "My name is...", "basics", domain.RegisterNeutral},
	{"Ech verstinn net", "I don't understand", "basics", domain.RegisterNeutral},
	{"Kënnt Dir dat widderhuelen?", "Can you repeat that?", "basics", domain.RegisterFormal},
	{"Schwätzt Dir Englesch?", "Do you speak English?", "basics", domain.RegisterFormal},

	{"Ech hunn Honger", "I am hungry", "food-drink", domain.RegisterNeutral},
	{"Ech hunn Duuscht", "I am thirsty", "food-drink", domain.RegisterNeutral},
	{"D'Rechnung, wann ech gelift", "The bill, please", "food-drink", domain.RegisterFormal},

	{"Wou ass...?", "Where is...?", "travel", domain.RegisterNeutral},
	{"Wéi wäit ass et?", "How far is it?", "travel", domain.RegisterNeutral},
	{"Ech géif gär eng Kaart", "I would like a ticket", "travel", domain.RegisterFormal},
}

package service

import (
	"strings"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Family selects the question table of a prayer.
type Family int

const (
	FamilyNone Family = iota
	FamilyChalisa
	FamilyBaan
	FamilyAarti
	FamilyMantra
)

func (f Family) String() string {
	switch f {
	case FamilyChalisa:
		return "chalisa"
	case FamilyBaan:
		return "baan"
	case FamilyAarti:
		return "aarti"
	case FamilyMantra:
		return "mantra"
	default:
		return "none"
	}
}

// FamilyForTitle picks the family by substring match on the title. The
// first family that matches wins, in the order Chalisa, Baan, Aarti,
// Gayatri or Mantra.
//
// A title containing words of two families, such as "Shiva Mantra Chalisa",
// resolves to the first one in that order.
func FamilyForTitle(title string) Family {
	switch {
	case strings.Contains(title, "Chalisa"):
		return FamilyChalisa
	case strings.Contains(title, "Baan"):
		return FamilyBaan
	case strings.Contains(title, "Aarti"):
		return FamilyAarti
	case strings.Contains(title, "Gayatri"), strings.Contains(title, "Mantra"):
		return FamilyMantra
	default:
		return FamilyNone
	}
}

// lookupQuestion returns the unshuffled question of a verse.
func lookupQuestion(f Family, verseNumber int) (entities.QuizQuestion, bool) {
	q, ok := questionBank[f][verseNumber]
	return q, ok
}

// newQuestion builds a table entry. The first option is the correct one.
func newQuestion(verse int, question, explanation string, options ...string) entities.QuizQuestion {
	return entities.QuizQuestion{
		VerseNumber:        verse,
		Question:           question,
		Options:            options,
		CorrectAnswerIndex: 0,
		Explanation:        explanation,
	}
}

var questionBank = map[Family]map[int]entities.QuizQuestion{
	FamilyChalisa: {
		1: newQuestion(1, "What does 'ज्ञान गुन सागर' mean?",
			"Hanuman ji is described as an ocean (sagar) of knowledge (gyan) and virtues (gun).",
			"Ocean of wisdom and virtue", "Mountain of strength", "River of devotion", "Sky of knowledge"),
		2: newQuestion(2, "Who is Anjani Putra?",
			"Anjani Putra means 'son of Anjani.' Hanuman's mother is Mata Anjani.",
			"Son of Anjani (Hanuman)", "Son of Ram", "Son of Shiva", "Son of Brahma"),
		3: newQuestion(3, "What bad thoughts does Hanuman remove?",
			"The verse says 'Kumati Nivar' - Hanuman removes bad thoughts and brings good wisdom.",
			"Kumati (bad thoughts)", "Hunger", "Anger", "Laziness"),
		4: newQuestion(4, "What color is Hanuman's complexion?",
			"Kanchan Baran means golden colored. Hanuman has a beautiful golden complexion.",
			"Golden (Kanchan)", "Blue", "Green", "Red"),
		5: newQuestion(5, "What does Hanuman hold in his hand?",
			"Hath Vajra Aur Dhvaja - In his hand, Hanuman holds a vajra (thunderbolt) and a flag.",
			"Vajra (thunderbolt) and flag", "Sword and shield", "Bow and arrow", "Trident and drum"),
		11: newQuestion(11, "What medicine did Hanuman bring to save Lakshman?",
			"Laye Sanjivan Lakhan Jiyaye - Hanuman brought the Sanjivani herb to revive Lakshman.",
			"Sanjivani herb", "Amrit (nectar)", "Holy water", "Golden apple"),
		14: newQuestion(14, "Who else praises Hanuman along with Narad?",
			"Narad Sarad Sahit Ahi Naare - Narad, Saraswati (Sarad), and Sheshnag (Ahi) all praise Hanuman.",
			"Saraswati and Sheshnag", "Lakshmi and Ganesh", "Parvati and Kartik", "Durga and Kali"),
		18: newQuestion(18, "How far was the Sun when Hanuman tried to eat it?",
			"Yug Sahastra Jojan Par Bhanu - The Sun was extremely far away, but Hanuman leaped to catch it as a child!",
			"Yug Sahastra Jojan (very far)", "One mile", "One kilometer", "Ten steps"),
		24: newQuestion(24, "What happens when we take Hanuman's name?",
			"Bhoot Pisaach Nikat Nahin Aavein - When we chant Hanuman's name, negative energies cannot come near us.",
			"Ghosts and evil spirits stay away", "We become rich", "We fly", "We become invisible"),
		40: newQuestion(40, "Who wrote Hanuman Chalisa?",
			"Tulsidas Sada Hari Chera - The great poet-saint Tulsidas composed the Hanuman Chalisa.",
			"Tulsidas", "Valmiki", "Kabir", "Surdas"),
	},
	FamilyBaan: {
		1: newQuestion(1, "What does 'Dhanya' mean when we say 'Bolo Tum Dhanya'?",
			"Dhanya means blessed. We are saying Hanuman ji is blessed and fortunate.",
			"Blessed", "Strong", "Wise", "Fast"),
		8: newQuestion(8, "What city did Hanuman burn?",
			"Lanka Ko Jare - Hanuman burned the demon king Ravana's city of Lanka.",
			"Lanka", "Ayodhya", "Mathura", "Dwarka"),
	},
	FamilyAarti: {
		1: newQuestion(1, "What is an 'Aarti'?",
			"Aarti is a special prayer where we light a lamp and sing praises to God.",
			"A special prayer with a lamp", "A type of dance", "A musical instrument", "A type of food offering"),
		2: newQuestion(2, "What happens when Hanuman shows his strength?",
			"Jake Bal Se Girivar Kaanpe - By Hanuman's strength, even mountains tremble.",
			"Even mountains shake", "Rivers flow backwards", "The sun stops moving", "Birds stop flying"),
		3: newQuestion(3, "Who is Anjani Putra?",
			"Anjani Putra means 'son of Anjani.' Hanuman's mother is Mata Anjani.",
			"Son of Anjani (Hanuman)", "Son of Ram", "Son of Shiva", "Son of Brahma"),
		4: newQuestion(4, "What did Hanuman do when Lord Ram sent him to Lanka?",
			"De Bira Raghunath Pathaye, Lanka Jari Siya Sudhi Laye - Hanuman burned Lanka and brought news of Sita.",
			"Burned Lanka and brought news of Sita", "Fought Ravana", "Stole gold", "Made friends with demons"),
		5: newQuestion(5, "How did Hanuman cross the ocean to reach Lanka?",
			"Jat Pavan Sut Bar Na Lai - The son of Wind (Hanuman) crossed it in one leap without needing a second jump.",
			"In one big jump", "By swimming", "On a boat", "By flying on a bird"),
		6: newQuestion(6, "What did Hanuman bring to save Lakshman?",
			"Laye Sanjivan Lakhan Jiyaye - Hanuman brought the Sanjivani herb to revive Lakshman.",
			"Sanjivani herb", "Amrit (nectar)", "Holy water", "Golden apple"),
		7: newQuestion(7, "Who did Hanuman help rescue?",
			"Hanuman helped Lord Ram rescue Sita from Lanka.",
			"Sita", "Draupadi", "Kunti", "Gandhari"),
		8: newQuestion(8, "What does Hanuman protect us from?",
			"Rog Dosh Jake Nikat Na Jhaanke - Diseases and faults do not come near Hanuman.",
			"Diseases and bad things", "Rain", "Sunlight", "Cold weather"),
		9: newQuestion(9, "Who does Hanuman always help?",
			"Sant Ke Prabhu Sada Sahai - Hanuman always helps saints and devotees.",
			"Saints and good people", "Only kings", "Only children", "Only animals"),
		10: newQuestion(10, "What happens when we do Hanuman's Aarti?",
			"When we do Aarti, we show our love and devotion, and receive Hanuman's blessings.",
			"We get his blessings", "We become rich", "We can fly", "We become invisible"),
		11: newQuestion(11, "What is Hanuman known for?",
			"Hanuman is known for his incredible strength and his deep devotion to Lord Ram.",
			"Great strength and devotion", "Being a king", "Being a teacher", "Being a farmer"),
		12: newQuestion(12, "What should we do at the end of Aarti?",
			"After Aarti, we take blessings and prasad (blessed food) as a sign of receiving God's grace.",
			"Take blessings and prasad", "Run away", "Go to sleep", "Start eating"),
	},
	// Verses 2-4 break the mantra down word by word.
	FamilyMantra: {
		1: newQuestion(1, "What is the Gayatri Mantra a prayer to?",
			"The Gayatri Mantra is a prayer to the Sun God (Savitri/Surya), asking for divine light to illuminate our minds.",
			"The Sun God (Savitri/Surya)", "The Moon God", "The Wind God", "The Fire God"),
		2: newQuestion(2, "What does 'Bhur' mean in 'Om Bhur Bhuva Swaha'?",
			"Bhur means the Earth - the physical world where we live.",
			"Earth (the physical world)", "Sky", "Heaven", "Water"),
		3: newQuestion(3, "What does 'Dheemahi' mean?",
			"Dheemahi means 'we meditate upon' - we think deeply about God's divine light.",
			"We meditate upon", "We sing", "We dance", "We sleep"),
		4: newQuestion(4, "What does 'Prachodayat' mean?",
			"Prachodayat means 'may inspire and guide' - we're asking God to guide our thoughts in the right direction.",
			"May inspire and guide", "May protect", "May give", "May take away"),
	},
}

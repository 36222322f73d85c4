package language

import "regexp"

var romanUrduWords = set(
	// pronouns and question words
	"mera", "meri", "mere", "tera", "teri", "tere", "uska", "uski", "uske",
	"hamara", "hamari", "hamare", "tumhara", "tumhari", "tumhare",
	"mujhe", "tujhe", "aap", "aapka", "aapki", "aapko", "hum", "tum",
	"woh", "wo", "yeh", "ye", "kya", "kaun", "kahan", "kab", "kyun", "kaise",

	// verbs
	"hai", "hain", "ho", "tha", "thi", "the", "hoga", "hogi", "hoge",
	"kar", "karo", "karna", "karta", "karti", "karte", "karein", "karunga", "karungi",
	"bol", "bolo", "bolna", "bolta", "bolti", "bolte", "batao", "batana", "bata",
	"sun", "suno", "sunna", "sunta", "sunti", "sunte", "sunao",
	"dekh", "dekho", "dekhna", "dekhta", "dekhti", "dekhte",
	"ja", "jao", "jana", "jata", "jati", "jate", "jaana", "jayega", "jayegi",
	"aa", "aao", "aana", "aata", "aati", "aate", "aaonga", "aaongi",
	"le", "lo", "lena", "leta", "leti", "lete", "liya", "liye",
	"de", "do", "dena", "deta", "deti", "dete", "diya", "diye",
	"raha", "rahi", "rahe", "raho", "rehna", "rehta", "rehti",
	"sakta", "sakti", "sakte", "sakein",
	"chahiye", "chahte", "chahti", "chaahta", "chaahti",
	"laga", "lagi", "lage", "lagta", "lagti", "lagte",
	"pata", "pati", "maloom", "samajh", "samjha", "samjho",
	"horha", "horhi", "horhe", "horai", "hora",
	"karha", "karhi", "karhe",

	// nouns
	"dil", "dimagh", "sir", "sar", "dard", "drd", "takleef", "taklif",
	"zindagi", "zindgi", "maut", "pyar", "mohabbat", "ishq",
	"ghar", "kaam", "kam", "paisa", "paise", "waqt", "time",
	"raat", "din", "subah", "shaam", "kal", "aaj", "parso",
	"dost", "bhai", "behen", "behan", "maa", "baap", "abbu", "ammi",
	"log", "banda", "bande", "insaan", "aadmi", "aurat", "larki", "larka",
	"khushi", "gham", "udaas", "udasi", "tension", "fikar", "fikr",
	"neend", "nind", "thakan", "thakawat", "aram", "sukoon",

	// feelings
	"udas", "pareshan", "preshan", "ghabra", "ghabrahat",
	"akela", "akeli", "akele", "tanha", "tanhai",
	"dar", "darr", "khauf", "khof", "stress",
	"thak", "thaka", "thaki", "thake", "thakgaya", "thakgayi",
	"rona", "roya", "royi", "roye", "ro", "aansu", "aansoo",
	"hasna", "hasa", "hasi", "hanse", "muskurana", "muskura",
	"gussa", "ghussa", "naraz", "upset",

	// common expressions
	"kuch", "koi", "sab", "bohot", "bahut", "bohat", "zyada", "ziada",
	"thoda", "thodi", "thore", "bilkul", "bilkool",
	"acha", "achi", "ache", "bura", "buri", "bure",
	"theek", "thik", "sahi", "galat", "mushkil", "aasan", "asan",
	"pehle", "baad", "abhi", "ab", "phir", "fir",
	"lekin", "magar", "par", "kyunke", "kyonke", "isliye", "islye",
	"shayad", "zaroor", "zarur", "hamesha", "kabhi", "kabho",
	"sirf", "bas", "bhi", "aur", "ya", "nahi", "nhi", "na", "mat", "haan", "han", "ji",
	"please", "plz", "pls", "shukriya", "shukria", "meherbani",

	// shorthand
	"kr", "kro", "krna", "krta", "krti", "krte",
	"h", "hn", "ni", "shi", "toh", "to",
	"bs", "bss", "or",
	"pta", "btao", "btana", "smjh", "smjha",
	"ap", "apko", "apka", "apki",
	"mjhe", "mjh", "hmara", "hmari", "tmhara", "tmhari",
	"kbi", "kbhi", "hmesa", "phle", "bd",
	"q", "kyu", "kn", "kb", "kha", "kese",

	// greetings
	"salam", "assalam", "walaikum", "alikum", "slm",
	"khuda", "allah", "hafiz", "janab",
)

var englishWords = set(
	"the", "is", "are", "was", "were", "been", "being",
	"have", "has", "had", "having", "do", "does", "did",
	"will", "would", "could", "should", "may", "might",
	"must", "shall", "can", "need", "dare", "ought",
	"i", "me", "my", "myself", "we", "our", "ours",
	"you", "your", "yours", "he", "him", "his", "she", "her",
	"it", "its", "they", "them", "their", "what", "which",
	"who", "whom", "this", "that", "these", "those",
	"am", "because", "but", "and", "or",
	"feeling", "feel", "felt", "think", "thought", "know",
	"help", "want", "like", "love", "hate",
	"happy", "sad", "angry", "scared", "worried", "anxious",
	"depressed", "stressed", "tired", "exhausted", "overwhelmed",
	"today", "yesterday", "tomorrow", "now", "always", "never",
	"sometimes", "often", "usually", "really", "very", "much",
	"hi", "hello", "hey", "good", "morning", "evening", "night",
	"thanks", "thank", "please", "sorry", "okay", "ok", "yes", "no",
	"how", "doing", "going", "fine", "well", "great",
)

// Short utterances are classified only against these unambiguous sets.
var (
	shortEnglish = set("hi", "hello", "hey", "yo", "sup", "thanks", "ok", "okay",
		"yes", "no", "good", "fine", "great", "help", "please")
	shortUrdu = set("salam", "assalam", "walaikum", "kaise", "kya", "mujhe",
		"batao", "haan", "nahi", "bohot", "bhai", "yaar")
)

// Consulted when too few tokens hit either lexicon. Each pattern that
// matches counts as one additional Roman Urdu hit.
var urduPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(kya|kaise|kyun|kahan|kab)\b`),
	regexp.MustCompile(`\b(hai|hain|tha|thi|ho)\b`),
	regexp.MustCompile(`\b(mera|meri|tera|teri|aap)\b`),
	regexp.MustCompile(`\b(nahi|nhi|mat|haan|han)\b`),
	regexp.MustCompile(`\b(bohot|bahut|bohat|zyada)\b`),
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

package query

// genreDescriptions is the fixed genre vocabulary: descriptive phrases, not
// prescriptive mappings, so relevance comes from semantic similarity.
// Declaration order breaks ranking ties.
var genreNames = []string{
	"indie", "pop", "rock", "electronic", "folk", "r&b", "hip-hop", "jazz",
	"classical", "metal", "punk", "ambient", "soul", "country", "reggae", "blues",
}

var genreDescriptions = map[string]string{
	"indie":      "independent alternative music with artistic creativity and emotional depth",
	"pop":        "popular mainstream catchy accessible music with broad appeal",
	"rock":       "guitar-driven energetic powerful music with strong rhythms",
	"electronic": "synthesizer electronic beats digital production modern sounds",
	"folk":       "acoustic traditional storytelling organic natural instruments",
	"r&b":        "rhythm and blues soul smooth vocals emotional expression",
	"hip-hop":    "rap beats urban poetry rhythmic spoken word",
	"jazz":       "improvisation sophisticated complex harmonies instrumental",
	"classical":  "orchestral traditional composed instrumental sophisticated",
	"metal":      "heavy distorted aggressive intense powerful dark",
	"punk":       "fast raw rebellious energetic simple direct",
	"ambient":    "atmospheric soundscape minimal relaxing textural",
	"soul":       "emotional expressive vocals heartfelt passion",
	"country":    "storytelling acoustic traditional americana roots",
	"reggae":     "offbeat rhythm relaxed caribbean groove positive",
	"blues":      "emotional guitar melancholic storytelling raw feelings",
}

var moodNames = []string{
	"uplifting", "melancholic", "energetic", "calm", "dark",
	"romantic", "aggressive", "dreamy", "groovy", "raw",
}

var moodDescriptions = map[string]string{
	"uplifting":   "inspiring hopeful positive bright encouraging energizing",
	"melancholic": "sad reflective nostalgic bittersweet wistful longing",
	"energetic":   "active dynamic powerful intense driving exciting",
	"calm":        "peaceful relaxing soothing gentle quiet tranquil",
	"dark":        "moody atmospheric somber brooding intense heavy",
	"romantic":    "loving tender intimate passionate affectionate emotional",
	"aggressive":  "intense powerful forceful angry rebellious raw",
	"dreamy":      "ethereal floating soft atmospheric hazy ambient",
	"groovy":      "funky rhythmic danceable smooth moving infectious",
	"raw":         "authentic unpolished emotional honest direct stripped",
}

package lyrics

// emotionOrder fixes the iteration order for keyword extraction and the
// reverse-relation fallback, which would otherwise depend on map ordering.
var emotionOrder = []string{
	"happy", "sad", "love", "angry", "hopeful", "nostalgic", "energetic",
	"calm", "melancholic", "romantic", "anxious", "peaceful", "tired",
	"confident", "rebellious", "playful", "sensual", "empowered",
	"vulnerable", "mysterious", "dreamy", "grateful", "lonely", "inspired",
	"conflicted", "carefree",
}

var emotionKeywords = map[string][]string{
	"happy": {
		"happy", "joy", "smile", "laugh", "celebrate", "bright", "sunshine",
		"good", "wonderful", "amazing", "fantastic", "cheerful", "delight",
		"fun", "party", "dancing", "excited", "glad", "blessed", "thrill",
		"euphoria", "ecstatic", "bliss", "grin", "giggle", "cheer", "jolly",
		"merry", "gleeful", "elated", "jubilant", "radiant", "golden",
	},
	"sad": {
		"sad", "cry", "tear", "lonely", "heartbreak", "miss", "lost", "pain",
		"hurt", "broken", "empty", "alone", "sorrow", "grief", "blue", "down",
		"depressed", "misery", "suffering", "ache", "weep", "mourn", "sobbing",
		"despair", "hopeless", "darkness", "gloom", "somber", "melancholy",
		"heavy", "numb", "hollow", "forsaken", "abandoned", "dejected",
	},
	"love": {
		"love", "heart", "together", "forever", "kiss", "embrace", "darling",
		"baby", "dear", "sweet", "romance", "passion", "desire", "need",
		"want", "adore", "cherish", "devotion", "affection", "tender",
		"intimate", "lover", "beloved", "soulmate", "valentine", "crush",
		"infatuation", "enamored", "yearning", "longing", "attracted",
	},
	"angry": {
		"angry", "rage", "hate", "fight", "scream", "mad", "burn",
		"fury", "violent", "destroy", "break", "smash", "kill", "blood",
		"war", "enemy", "revenge", "fire", "furious", "wrath", "outrage",
		"fierce", "savage", "brutal", "hostile", "aggression", "venom",
		"spite", "bitter", "resentment", "grudge", "storm", "thunder",
	},
	"hopeful": {
		"hope", "dream", "believe", "faith", "future", "tomorrow", "rise",
		"better", "new", "change", "light", "shine", "star", "wish",
		"possible", "trust", "prayer", "dawn", "sunrise", "begin",
		"start", "fresh", "optimistic", "inspire", "aspire", "vision",
		"miracle", "fortune", "blessed", "lucky", "chance", "opportunity",
	},
	"nostalgic": {
		"remember", "memory", "past", "yesterday", "used to", "back when",
		"once", "before", "old", "time", "moment", "ago", "reminisce",
		"recall", "forgotten", "history", "childhood", "younger", "summer",
		"seasons", "photographs", "letters", "vintage", "ancient",
		"faded", "dusty", "previous", "former", "expired", "bygone",
	},
	"energetic": {
		"run", "dance", "move", "jump", "wild", "alive", "fire",
		"fast", "quick", "rush", "power", "energy", "strong", "loud",
		"intense", "explosive", "electric", "pumped", "adrenaline",
		"charged", "dynamic", "vigorous", "fierce", "blazing", "roar",
		"thunder", "lightning", "ignite", "spark", "burst", "surge",
	},
	"calm": {
		"calm", "peace", "quiet", "still", "gentle", "soft", "breathe",
		"slow", "rest", "relax", "tranquil", "serene", "silent", "sleep",
		"whisper", "soothe", "ease", "drift", "float", "mellow", "laid",
		"chill", "steady", "smooth", "mild", "placid", "composed",
	},
	"melancholic": {
		"melancholy", "wistful", "bittersweet", "longing", "yearning",
		"regret", "lament", "mourn", "fade", "dusk", "autumn", "rain",
		"gray", "cold", "distant", "echoes", "shadows", "ghosts",
		"twilight", "fading", "waning", "decline", "diminish", "slip",
		"drift", "dissolve", "vanish", "haunt", "linger", "trace",
	},
	"romantic": {
		"romantic", "lover", "intimate", "tender", "gentle", "close",
		"touch", "hold", "warm", "soft", "beautiful", "eyes", "gaze",
		"caress", "cuddle", "snuggle", "whisper", "moonlight", "candlelight",
		"roses", "flowers", "serenade", "enchanted", "charmed", "swept",
	},
	"anxious": {
		"anxious", "worry", "fear", "scared", "nervous", "panic", "stress",
		"tension", "pressure", "uncertain", "doubt", "restless", "uneasy",
		"afraid", "terrified", "dread", "paranoid", "frantic", "troubled",
		"distressed", "overwhelmed", "crisis", "chaos", "confusion",
		"shaking", "trembling", "racing", "breathless", "trapped",
	},
	"peaceful": {
		"peaceful", "harmony", "balance", "zen", "meditation", "nature",
		"ocean", "breeze", "sunset", "morning", "stillness", "sanctuary",
		"haven", "oasis", "garden", "meadow", "valley", "river", "stream",
		"mountain", "sky", "clouds", "birds", "gentle", "flowing",
	},
	"tired": {
		"tired", "exhausted", "weary", "drained", "fatigue", "worn",
		"sleepy", "drowsy", "spent", "depleted", "sluggish", "languid",
		"lethargic", "weak", "faint", "heavy", "burden", "weight",
	},
	"confident": {
		"confident", "proud", "strong", "bold", "brave", "fearless",
		"unstoppable", "invincible", "powerful", "mighty", "champion",
		"winner", "conqueror", "triumph", "victory", "glory", "crown",
		"throne", "king", "queen", "boss", "legend", "hero",
	},
	"rebellious": {
		"rebel", "break", "rules", "free", "wild", "chaos", "riot",
		"revolution", "fight", "resist", "defy", "against", "outlaw",
		"renegade", "maverick", "anarchist", "underground", "punk",
	},
	"playful": {
		"play", "fun", "silly", "joke", "laugh", "tease", "flirt",
		"game", "trick", "prank", "mischief", "cheeky", "witty",
		"clever", "humorous", "amusing", "entertaining", "lighthearted",
	},
	"sensual": {
		"body", "skin", "lips", "touch", "taste", "feel", "sensation",
		"desire", "heat", "sweat", "breathe", "pulse", "rhythm",
		"slow", "deep", "intense", "curves", "smooth", "silk",
	},
	"empowered": {
		"power", "strong", "rise", "fight", "stand", "voice", "speak",
		"roar", "warrior", "survivor", "overcome", "conquer", "unbreakable",
		"resilient", "fierce", "determined", "unstoppable", "force",
	},
	"vulnerable": {
		"vulnerable", "fragile", "delicate", "exposed", "raw", "open",
		"honest", "naked", "bare", "confession", "admit", "reveal",
		"truth", "weakness", "human", "imperfect", "flawed",
	},
	"mysterious": {
		"mystery", "secret", "shadow", "dark", "hidden", "unknown",
		"enigma", "puzzle", "cryptic", "strange", "whisper", "midnight",
		"moon", "veil", "mask", "lurk", "fog", "mist", "obscure",
	},
	"dreamy": {
		"dream", "fantasy", "imagine", "surreal", "ethereal", "floating",
		"cloud", "sky", "stars", "cosmic", "universe", "magical",
		"enchanted", "mystical", "otherworldly", "transcendent", "drift",
	},
	"grateful": {
		"grateful", "thankful", "appreciate", "bless", "fortune", "lucky",
		"gift", "treasure", "precious", "value", "honor", "privilege",
		"grace", "mercy", "kindness", "generosity", "abundance",
	},
	"lonely": {
		"lonely", "alone", "solitude", "isolated", "separate", "distant",
		"apart", "missing", "absence", "void", "empty", "silence",
		"nobody", "solo", "single", "deserted", "stranded", "abandoned",
	},
	"inspired": {
		"inspire", "motivation", "driven", "passion", "create", "build",
		"achieve", "realize", "manifest", "purpose", "calling", "destiny",
		"potential", "greatness", "excellence", "brilliance", "genius",
	},
	"conflicted": {
		"torn", "divided", "confused", "stuck", "between", "choice",
		"dilemma", "struggle", "battle", "conflict", "war", "fight",
		"against", "within", "question", "doubt", "maybe", "perhaps",
	},
	"carefree": {
		"carefree", "easy", "breezy", "light", "simple", "wandering",
		"roaming", "drifting", "floating", "lazy", "casual", "relaxed",
		"spontaneous", "adventure", "explore", "discover", "journey",
	},
}

// relatedEmotions weights semantic neighbors of each emotion for indirect
// lyric matching.
var relatedEmotions = map[string]map[string]float64{
	"happy": {
		"love": 0.7, "hopeful": 0.7, "energetic": 0.6, "playful": 0.8,
		"grateful": 0.7, "confident": 0.6, "carefree": 0.8, "inspired": 0.6,
	},
	"sad": {
		"melancholic": 0.9, "nostalgic": 0.7, "anxious": 0.6, "lonely": 0.9,
		"vulnerable": 0.7, "conflicted": 0.6, "tired": 0.5,
	},
	"energetic": {
		"happy": 0.6, "angry": 0.7, "confident": 0.8, "rebellious": 0.7,
		"empowered": 0.8, "playful": 0.6, "inspired": 0.7,
	},
	"calm": {
		"peaceful": 0.9, "hopeful": 0.5, "dreamy": 0.7, "carefree": 0.6,
		"grateful": 0.5, "tired": 0.5,
	},
	"angry": {
		"energetic": 0.7, "anxious": 0.6, "rebellious": 0.8, "empowered": 0.6,
		"conflicted": 0.6,
	},
	"melancholic": {
		"sad": 0.9, "nostalgic": 0.8, "lonely": 0.8, "vulnerable": 0.7,
		"mysterious": 0.5, "dreamy": 0.5,
	},
	"hopeful": {
		"happy": 0.7, "peaceful": 0.5, "inspired": 0.8, "empowered": 0.7,
		"confident": 0.6, "grateful": 0.7,
	},
	"romantic": {
		"love": 0.9, "happy": 0.6, "peaceful": 0.5, "dreamy": 0.6,
		"sensual": 0.8, "playful": 0.5, "vulnerable": 0.6,
	},
	"anxious": {
		"sad": 0.6, "angry": 0.6, "conflicted": 0.8, "vulnerable": 0.7,
		"tired": 0.6, "lonely": 0.5,
	},
	"peaceful": {
		"calm": 0.9, "hopeful": 0.5, "dreamy": 0.7, "grateful": 0.6,
		"carefree": 0.6,
	},
	"tired": {
		"calm": 0.5, "sad": 0.5, "melancholic": 0.6, "peaceful": 0.4,
		"vulnerable": 0.5, "lonely": 0.5,
	},
	"confident": {
		"energetic": 0.8, "empowered": 0.9, "happy": 0.6, "rebellious": 0.6,
		"inspired": 0.7,
	},
	"rebellious": {
		"angry": 0.8, "energetic": 0.7, "confident": 0.6, "empowered": 0.7,
	},
	"playful": {
		"happy": 0.8, "energetic": 0.6, "carefree": 0.7, "love": 0.5,
	},
	"sensual": {
		"romantic": 0.8, "love": 0.7, "mysterious": 0.5, "dreamy": 0.4,
	},
	"empowered": {
		"confident": 0.9, "energetic": 0.8, "rebellious": 0.7, "inspired": 0.8,
		"hopeful": 0.7, "angry": 0.5,
	},
	"vulnerable": {
		"sad": 0.7, "anxious": 0.7, "romantic": 0.6, "melancholic": 0.7,
		"lonely": 0.6, "honest": 0.8,
	},
	"mysterious": {
		"dreamy": 0.7, "melancholic": 0.5, "sensual": 0.5, "anxious": 0.4,
	},
	"dreamy": {
		"calm": 0.7, "peaceful": 0.7, "mysterious": 0.7, "romantic": 0.6,
		"hopeful": 0.5, "nostalgic": 0.5,
	},
	"grateful": {
		"happy": 0.7, "hopeful": 0.7, "peaceful": 0.6, "love": 0.6,
		"calm": 0.5,
	},
	"lonely": {
		"sad": 0.9, "melancholic": 0.8, "nostalgic": 0.6, "vulnerable": 0.6,
		"anxious": 0.5,
	},
	"inspired": {
		"hopeful": 0.8, "energetic": 0.7, "empowered": 0.8, "confident": 0.7,
		"happy": 0.6,
	},
	"conflicted": {
		"anxious": 0.8, "sad": 0.6, "angry": 0.6, "vulnerable": 0.7,
		"melancholic": 0.6,
	},
	"carefree": {
		"happy": 0.8, "calm": 0.6, "peaceful": 0.6, "playful": 0.7,
		"dreamy": 0.5,
	},
	"love": {
		"romantic": 0.9, "happy": 0.7, "grateful": 0.6, "vulnerable": 0.5,
		"sensual": 0.7,
	},
	"nostalgic": {
		"melancholic": 0.8, "sad": 0.7, "peaceful": 0.4, "dreamy": 0.5,
		"lonely": 0.6,
	},
}

package emotion

import "github.com/treble-labs/emorec/internal/core/domain"

// Enumerated emotion names, in declaration order. Ranking ties are broken by
// this order.
var Emotions = []string{
	"happy", "sad", "energetic", "calm", "angry",
	"melancholic", "hopeful", "romantic", "anxious", "peaceful",
	"tired", "confident", "rebellious", "playful", "sensual",
	"empowered", "vulnerable", "mysterious", "dreamy", "grateful",
	"lonely", "inspired", "conflicted", "carefree", "love",
	"nostalgic",
}

// coreEmotions are the emotions with rich context descriptions encoded at
// startup. The remaining enumerated emotions get their embeddings learned
// lazily through the same context-sentence path as arbitrary phrases.
var coreEmotions = []string{
	"happy", "sad", "energetic", "calm", "angry",
	"melancholic", "hopeful", "romantic", "anxious", "peaceful",
}

// emotionContexts holds several descriptive sentences per core emotion. The
// emotion's embedding is the mean of the sentence embeddings, which captures
// more nuance than encoding the bare word.
var emotionContexts = map[string][]string{
	"happy": {
		"upbeat energetic joyful cheerful music that makes you want to dance and smile",
		"bright positive optimistic songs with uplifting melodies and happy lyrics",
		"feel-good party music with infectious energy and celebration vibes",
		"music that radiates joy, sunshine, and good vibes all around",
	},
	"sad": {
		"melancholic emotional music about heartbreak and loss that brings tears",
		"slow somber songs with sorrowful melodies expressing pain and loneliness",
		"music about missing someone, feeling empty and broken inside",
		"tearjerker ballads with emotional depth and vulnerability",
	},
	"energetic": {
		"high-energy intense powerful music that pumps you up for action",
		"fast-paced adrenaline-fueled songs perfect for workouts and motivation",
		"explosive dynamic tracks with driving beats and aggressive intensity",
		"music that makes you want to move, run, jump and unleash energy",
	},
	"calm": {
		"peaceful relaxing soothing music for meditation and tranquility",
		"gentle quiet ambient sounds that help you breathe and unwind",
		"serene calming melodies for rest, sleep and stress relief",
		"soft mellow music that brings inner peace and stillness",
	},
	"angry": {
		"aggressive intense furious music expressing rage and rebellion",
		"hard-hitting heavy songs with violent angry energy and distortion",
		"music channeling frustration, hatred and explosive emotions",
		"raw powerful tracks about fighting back and destructive fury",
	},
	"melancholic": {
		"bittersweet nostalgic music tinged with sadness and longing",
		"wistful reflective songs about memories and things that fade away",
		"music with emotional depth expressing regret and yearning",
		"moody atmospheric tracks capturing autumn rain and dusk feelings",
	},
	"hopeful": {
		"inspiring uplifting music about believing in better tomorrow",
		"optimistic encouraging songs about dreams, faith and rising above",
		"music that gives hope, motivation and belief in possibilities",
		"tracks about new beginnings, light after darkness and positive change",
	},
	"romantic": {
		"intimate tender love songs about deep connection and devotion",
		"passionate romantic music expressing desire and affection",
		"soft sensual ballads about lovers, hearts and beautiful moments",
		"music capturing warmth, closeness and the magic of being in love",
	},
	"anxious": {
		"tense nervous unsettling music expressing worry and fear",
		"restless uncertain tracks with building pressure and unease",
		"music capturing stress, panic and anxious overwhelming feelings",
		"dark suspenseful songs about doubt and nervous anticipation",
	},
	"peaceful": {
		"tranquil harmonious serene music bringing balance and zen",
		"nature-inspired calming sounds of ocean breeze and gentle streams",
		"meditative peaceful tracks for mindfulness and inner stillness",
		"soothing ambient music creating atmosphere of complete peace",
	},
}

// rangeTables maps each enumerated emotion to its static audio-feature range
// table. The tables are descriptive output only.
var rangeTables = map[string]domain.FeatureRanges{
	"happy": {
		"valence":      {Min: 0.6, Max: 1.0},
		"energy":       {Min: 0.5, Max: 1.0},
		"danceability": {Min: 0.5, Max: 1.0},
		"tempo":        {Min: 100, Max: 180},
	},
	"sad": {
		"valence":      {Min: 0.0, Max: 0.4},
		"energy":       {Min: 0.0, Max: 0.5},
		"acousticness": {Min: 0.3, Max: 1.0},
		"tempo":        {Min: 60, Max: 100},
	},
	"energetic": {
		"energy":       {Min: 0.7, Max: 1.0},
		"danceability": {Min: 0.6, Max: 1.0},
		"tempo":        {Min: 120, Max: 200},
	},
	"calm": {
		"valence":      {Min: 0.3, Max: 0.7},
		"energy":       {Min: 0.0, Max: 0.4},
		"acousticness": {Min: 0.4, Max: 1.0},
		"tempo":        {Min: 60, Max: 100},
	},
	"angry": {
		"valence":  {Min: 0.0, Max: 0.3},
		"energy":   {Min: 0.7, Max: 1.0},
		"loudness": {Min: -10, Max: 0},
		"tempo":    {Min: 120, Max: 180},
	},
	"melancholic": {
		"valence":          {Min: 0.0, Max: 0.4},
		"energy":           {Min: 0.2, Max: 0.5},
		"acousticness":     {Min: 0.4, Max: 1.0},
		"instrumentalness": {Min: 0.0, Max: 0.7},
	},
	"hopeful": {
		"valence":      {Min: 0.4, Max: 0.8},
		"energy":       {Min: 0.4, Max: 0.7},
		"acousticness": {Min: 0.2, Max: 0.8},
	},
	"romantic": {
		"valence":      {Min: 0.4, Max: 0.8},
		"energy":       {Min: 0.2, Max: 0.6},
		"acousticness": {Min: 0.3, Max: 0.9},
		"danceability": {Min: 0.3, Max: 0.7},
	},
	"anxious": {
		"valence": {Min: 0.2, Max: 0.5},
		"energy":  {Min: 0.5, Max: 0.9},
		"tempo":   {Min: 100, Max: 160},
	},
	"peaceful": {
		"valence":          {Min: 0.4, Max: 0.8},
		"energy":           {Min: 0.0, Max: 0.3},
		"acousticness":     {Min: 0.5, Max: 1.0},
		"instrumentalness": {Min: 0.2, Max: 1.0},
	},
	"tired": {
		"valence":      {Min: 0.2, Max: 0.5},
		"energy":       {Min: 0.0, Max: 0.3},
		"tempo":        {Min: 60, Max: 90},
		"acousticness": {Min: 0.3, Max: 0.8},
	},
	"confident": {
		"valence":  {Min: 0.5, Max: 0.9},
		"energy":   {Min: 0.6, Max: 1.0},
		"loudness": {Min: -8, Max: 0},
		"tempo":    {Min: 100, Max: 140},
	},
	"rebellious": {
		"valence":  {Min: 0.3, Max: 0.7},
		"energy":   {Min: 0.7, Max: 1.0},
		"loudness": {Min: -8, Max: 0},
		"tempo":    {Min: 120, Max: 180},
	},
	"playful": {
		"valence":      {Min: 0.6, Max: 1.0},
		"energy":       {Min: 0.5, Max: 0.9},
		"danceability": {Min: 0.5, Max: 1.0},
		"tempo":        {Min: 100, Max: 150},
	},
	"sensual": {
		"valence":      {Min: 0.4, Max: 0.7},
		"energy":       {Min: 0.3, Max: 0.6},
		"danceability": {Min: 0.4, Max: 0.8},
		"tempo":        {Min: 80, Max: 120},
	},
	"empowered": {
		"valence":  {Min: 0.5, Max: 0.9},
		"energy":   {Min: 0.6, Max: 1.0},
		"loudness": {Min: -10, Max: 0},
		"tempo":    {Min: 100, Max: 150},
	},
	"vulnerable": {
		"valence":      {Min: 0.2, Max: 0.6},
		"energy":       {Min: 0.2, Max: 0.5},
		"acousticness": {Min: 0.4, Max: 1.0},
		"tempo":        {Min: 70, Max: 110},
	},
	"mysterious": {
		"valence":          {Min: 0.2, Max: 0.5},
		"energy":           {Min: 0.3, Max: 0.6},
		"acousticness":     {Min: 0.2, Max: 0.7},
		"instrumentalness": {Min: 0.3, Max: 0.8},
	},
	"dreamy": {
		"valence":          {Min: 0.3, Max: 0.7},
		"energy":           {Min: 0.2, Max: 0.5},
		"acousticness":     {Min: 0.3, Max: 0.8},
		"instrumentalness": {Min: 0.1, Max: 0.6},
	},
	"grateful": {
		"valence":      {Min: 0.6, Max: 0.9},
		"energy":       {Min: 0.3, Max: 0.7},
		"acousticness": {Min: 0.3, Max: 0.8},
	},
	"lonely": {
		"valence":      {Min: 0.0, Max: 0.3},
		"energy":       {Min: 0.1, Max: 0.4},
		"acousticness": {Min: 0.4, Max: 1.0},
		"tempo":        {Min: 60, Max: 100},
	},
	"inspired": {
		"valence": {Min: 0.5, Max: 0.9},
		"energy":  {Min: 0.5, Max: 0.9},
		"tempo":   {Min: 100, Max: 140},
	},
	"conflicted": {
		"valence": {Min: 0.2, Max: 0.5},
		"energy":  {Min: 0.4, Max: 0.7},
		"tempo":   {Min: 90, Max: 130},
	},
	"carefree": {
		"valence":      {Min: 0.6, Max: 1.0},
		"energy":       {Min: 0.4, Max: 0.8},
		"danceability": {Min: 0.4, Max: 0.8},
		"tempo":        {Min: 90, Max: 130},
	},
	"love": {
		"valence":      {Min: 0.5, Max: 0.9},
		"energy":       {Min: 0.3, Max: 0.7},
		"acousticness": {Min: 0.2, Max: 0.8},
		"danceability": {Min: 0.3, Max: 0.7},
	},
	"nostalgic": {
		"valence":      {Min: 0.3, Max: 0.6},
		"energy":       {Min: 0.2, Max: 0.5},
		"acousticness": {Min: 0.4, Max: 0.9},
		"tempo":        {Min: 70, Max: 110},
	},
}

// keywordEmotions maps descriptive keywords to their canonical enumerated
// emotion, used to build a range table for free-text phrases by substring
// match.
var keywordEmotions = map[string]string{
	"happy": "happy", "joy": "happy", "joyful": "happy",
	"cheerful": "happy", "glad": "happy", "excited": "happy",

	"sad": "sad", "depressed": "sad", "down": "sad",
	"unhappy": "sad", "sorrowful": "sad",

	"melancholy": "melancholic", "melancholic": "melancholic",
	"wistful": "melancholic", "bittersweet": "melancholic",

	"energetic": "energetic", "hyper": "energetic", "upbeat": "energetic",
	"pumped": "energetic", "active": "energetic",

	"calm": "calm", "relaxed": "calm", "chill": "calm",
	"mellow": "calm", "tranquil": "calm",

	"angry": "angry", "rage": "angry", "aggressive": "angry",
	"furious": "angry", "mad": "angry",

	"hopeful": "hopeful", "optimistic": "hopeful",

	"romantic": "romantic", "love": "love", "loving": "love",

	"anxious": "anxious", "nervous": "anxious",
	"worried": "anxious", "stressed": "anxious",

	"peaceful": "peaceful", "serene": "peaceful",

	"tired": "tired", "exhausted": "tired", "weary": "tired", "sleepy": "tired",

	"confident": "confident", "bold": "confident",
	"brave": "confident", "proud": "confident",

	"rebellious": "rebellious", "rebel": "rebellious", "defiant": "rebellious",

	"playful": "playful", "fun": "playful", "silly": "playful",
	"lighthearted": "playful",

	"sensual": "sensual", "sexy": "sensual", "seductive": "sensual",

	"empowered": "empowered", "powerful": "empowered", "strong": "empowered",

	"vulnerable": "vulnerable", "fragile": "vulnerable", "exposed": "vulnerable",

	"mysterious": "mysterious", "enigmatic": "mysterious", "dark": "mysterious",

	"dreamy": "dreamy", "ethereal": "dreamy", "floating": "dreamy",

	"grateful": "grateful", "thankful": "grateful", "blessed": "grateful",

	"lonely": "lonely", "alone": "lonely", "isolated": "lonely",

	"inspired": "inspired", "motivated": "inspired", "driven": "inspired",

	"conflicted": "conflicted", "torn": "conflicted", "confused": "conflicted",

	"carefree": "carefree", "free": "carefree", "easy": "carefree",

	"nostalgic": "nostalgic", "reminiscent": "nostalgic",
}

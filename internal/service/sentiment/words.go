package sentiment

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "fantastic", "wonderful",
	"brilliant", "outstanding", "superb", "magnificent", "perfect",
	"love", "like", "enjoy", "impressive", "beautiful", "awesome",
	"best", "incredible", "phenomenal", "marvelous", "spectacular",
	"divine", "flawless", "masterpiece", "epic", "thrilling",
	"captivating", "engaging", "delightful", "charming", "stunning",
	"breathtaking", "remarkable", "exceptional", "extraordinary",
	"genius", "powerful", "moving", "touching",
	"heartwarming", "inspiring", "uplifting", "refreshing",
	"entertaining", "hilarious", "funny", "witty", "clever",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "worst", "hate",
	"dislike", "disappointing", "boring", "poor", "waste",
	"stupid", "ridiculous", "pathetic", "useless", "annoying",
	"dull", "bland", "mediocre", "predictable", "cliche",
	"overrated", "underwhelming", "confusing", "messy", "chaotic",
	"painful", "torturous", "unbearable", "cringe", "awkward",
	"forced", "contrived", "artificial", "fake", "shallow",
	"pointless", "meaningless", "empty", "hollow", "weak",
	"failed", "disaster", "mess", "garbage", "trash",
)

var negations = wordSet(
	"not", "no", "never", "dont", "wont", "cant",
	"isnt", "wasnt", "werent", "hardly", "barely",
)

var strongAmplifiers = wordSet(
	"very", "really", "extremely", "absolutely",
	"completely", "totally", "incredibly",
)

var mildAmplifiers = wordSet("quite", "pretty", "rather", "fairly")

var diminishers = wordSet("somewhat", "kinda", "sorta", "bit")

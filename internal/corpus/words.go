package corpus

// Pair is a prompt/response template that seeds one generated line.
type Pair struct {
	Prompt   string
	Response string
}

// DefaultPairs are the seed pairs used when no others are given.
var DefaultPairs = []Pair{
	{"hello", "Hi there! How can I help you?"},
	{"who made you", "I was put together by an open source community."},
	{"about", "I'm a local offline assistant that runs on your machine."},
	{"help", "You can ask me anything about myself or how I work."},
	{"what is ai", "AI means Artificial Intelligence — machines that can learn."},
	{"what is go", "Go is a compiled language built for simple, reliable software."},
	{"goodbye", "See you again! — take care"},
}

// DefaultWords is the vocabulary for filler sentences. Words never contain
// spaces, '|' or line breaks.
var DefaultWords = []string{
	"data", "science", "python", "machine", "learning", "AI", "chatbot",
	"knowledge", "model", "system", "logic", "math", "smart", "neural",
	"compute", "training", "memory", "dataset", "function", "code", "analysis",
	"algorithm", "network", "intelligence", "robot", "automation", "pattern",
	"prediction", "statistics", "framework", "library", "developer", "engineer",
}

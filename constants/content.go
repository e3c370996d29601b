package constants

// StepCopy is the text shown for one step of the greeting
type StepCopy struct {
	Title    string
	Subtitle string
	Button   string
}

// StepContent is indexed by step order: welcome, decorate, cake, candles, blow, celebrate
// The celebrate title is a format string taking the recipient name
var StepContent = [...]StepCopy{
	{
		Title:    "* A Special Celebration Awaits! *",
		Subtitle: "Someone very special has a birthday today...",
		Button:   "Let's Celebrate!",
	},
	{
		Title:    "Let's Decorate!",
		Subtitle: "The room is getting ready for the party",
		Button:   "Bring the Cake!",
	},
	{
		Title:    "Here Comes the Cake!",
		Subtitle: "A delicious birthday cake just for you",
		Button:   "Light the Candles!",
	},
	{
		Title:    "Make a Wish!",
		Subtitle: "Close your eyes and make a special wish...",
		Button:   "Ready to Blow!",
	},
	{
		Title:    "Take a Deep Breath...",
		Subtitle: "Ready? Blow out all the candles!",
		Button:   "~ BLOW! ~",
	},
	{
		Title:    "* HAPPY BIRTHDAY %s! *",
		Subtitle: "May all your wishes come true!",
		Button:   "",
	},
}

// RestartButtonText labels the restart control shown while celebrating
const RestartButtonText = "Celebrate Again!"

// Recipient defaults
const (
	DefaultRecipientName = "Tanushree"
	DefaultRecipientAge  = 25
)

// Wishes are cycled below the cake while celebrating
var Wishes = []string{
	"Health",
	"Happiness",
	"Love",
	"Adventure",
}

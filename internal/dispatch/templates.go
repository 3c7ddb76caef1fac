package dispatch

const divByZeroReply = "Dividing by zero is undefined. Even math needs a break sometimes!"

var templates = map[Topic][]string{
	TopicMath: {
		"Let me crunch that: {expr} = {result}. Numbers can be a nice way to focus the mind!",
		"{expr} equals {result}! Want to try another one?",
		"The answer is {result}. Great brain workout!",
	},
	TopicAnxiety: {
		"It sounds like you're feeling anxious. Let's take a slow breath together: in for 4, hold for 7, out for 8.",
		"Worry can feel huge, but you're safe right now. Want to try the Breathe tool?",
		"When anxiety shows up, try naming 5 things you can see around you. It helps bring you back to now.",
		"You're not alone in feeling this way. One small step at a time is enough.",
	},
	TopicDepression: {
		"I'm really sorry you're feeling this low. Your feelings matter, and so do you.",
		"Heavy days happen, and they do pass. Is there one tiny thing that might feel a bit better?",
		"It's okay to not be okay. Talking to someone you trust can really help.",
		"You reached out, and that takes strength. I'm here with you.",
	},
	TopicFeelings: {
		"Thanks for telling me how you feel. All emotions are valid, even the messy ones.",
		"Feelings are like weather: they come and go. What do you think is behind this one?",
		"It's great that you're noticing your feelings. That's a real superpower!",
		"Would it help to write it down in the Dump Zone?",
	},
	TopicScience: {
		"Great question! Here's something cool: {fact}",
		"Curious minds grow stronger. Did you know? {fact}",
		"I love a good science moment. {fact}",
	},
	TopicDefault: {
		"That's a great question! I'm here to help you figure things out.",
		"I understand how you feel. It's totally normal to have these thoughts.",
		"Let's look at this from a different angle. What would make you happy right now?",
		"Sometimes our brains can be tricky! Remember that thoughts aren't always facts.",
		"You're doing great just by talking about this. That takes courage!",
		"What's one small thing you could do today that might make you feel a little better?",
		"I'm really proud of you for sharing that with me. It's not always easy.",
		"Take a deep breath with me. In... and out. How does that feel?",
		"What would your best friend say to you right now?",
		"It's okay to feel this way. Your emotions are important and valid.",
		"Would a quick brain break help? Maybe try the Breathe tool or a fun distraction?",
		"You're stronger than you think. You've gotten through tough times before!",
	},
}

var facts = []string{
	"Your brain uses about 20% of all the oxygen you breathe.",
	"Your brain generates enough electricity to power a small light bulb.",
	"Neurons can send signals at more than 250 miles per hour.",
	"Slow breathing activates the parasympathetic nervous system, which helps you calm down.",
	"Just a couple of minutes in nature can lower stress hormones.",
	"Smiling, even when you don't feel like it, can nudge your mood upward.",
	"Your brain keeps forming new connections your whole life. That's called neuroplasticity.",
	"Staying hydrated helps your brain focus and remember things.",
}

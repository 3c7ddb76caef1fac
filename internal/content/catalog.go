package content

var activitiesByMood = map[string][]Activity{
	"happy": {
		{ID: "energy-boost", Emoji: "🏃", Title: "Energy Boost", Description: "Do 10 jumping jacks to boost your happy energy!", Duration: "30 sec"},
		{ID: "dance-party", Emoji: "🎵", Title: "Dance Party", Description: "Put on your favorite song and dance for 1 minute!", Duration: "1 min"},
		{ID: "spread-joy", Emoji: "✨", Title: "Spread Joy", Description: "Write down 3 people you could make smile today", Duration: "2 min"},
	},
	"sad": {
		{ID: "comfort-break", Emoji: "☕", Title: "Comfort Break", Description: "Take a moment to enjoy a warm drink slowly", Duration: "3 min"},
		{ID: "color-therapy", Emoji: "🌈", Title: "Color Therapy", Description: "Look around and find 5 different colors in your environment", Duration: "1 min"},
		{ID: "self-hug", Emoji: "🤗", Title: "Self Hug", Description: "Give yourself a gentle hug and take 3 deep breaths", Duration: "30 sec"},
	},
	"anxious": {
		{ID: "box-breathing", Emoji: "🫁", Title: "Box Breathing", Description: "Breathe in for 4, hold for 4, out for 4, hold for 4. Repeat 5 times.", Duration: "2 min"},
		{ID: "hand-massage", Emoji: "👐", Title: "Hand Massage", Description: "Gently massage each finger and your palms", Duration: "1 min"},
		{ID: "grounding", Emoji: "🦶", Title: "Grounding", Description: "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste", Duration: "3 min"},
	},
	"excited": {
		{ID: "idea-blast", Emoji: "📝", Title: "Idea Blast", Description: "Write down 5 ideas or goals you're excited about", Duration: "2 min"},
		{ID: "focus-time", Emoji: "🎯", Title: "Focus Time", Description: "Channel your excitement into one focused task for 5 minutes", Duration: "5 min"},
		{ID: "balance-energy", Emoji: "🧘", Title: "Balance Energy", Description: "Stand on one foot and focus on your balance for 30 seconds each side", Duration: "1 min"},
	},
	"angry": {
		{ID: "water-break", Emoji: "💧", Title: "Water Break", Description: "Drink a full glass of cold water slowly", Duration: "1 min"},
		{ID: "release-tension", Emoji: "✊", Title: "Release Tension", Description: "Squeeze your fists tight for 5 seconds, then release. Repeat 5 times.", Duration: "1 min"},
		{ID: "cool-down", Emoji: "🧊", Title: "Cool Down", Description: "Hold something cold in your hands or place a cool cloth on your forehead", Duration: "2 min"},
	},
	"tired": {
		{ID: "energy-stretch", Emoji: "🙆", Title: "Energy Stretch", Description: "Reach your arms up high, then touch your toes. Repeat 5 times.", Duration: "1 min"},
		{ID: "eye-break", Emoji: "👁️", Title: "Eye Break", Description: "Close your eyes for 20 seconds, then look at something far away for 20 seconds", Duration: "1 min"},
		{ID: "quick-fuel", Emoji: "🍎", Title: "Quick Fuel", Description: "Eat a small healthy snack like a fruit or nuts", Duration: "3 min"},
	},
}

var defaultActivities = []Activity{
	{ID: "sunshine-moment", Emoji: "🌞", Title: "Sunshine Moment", Description: "Stand by a window or go outside for 1 minute of sunlight", Duration: "1 min"},
	{ID: "energy-move", Emoji: "💪", Title: "Energy Move", Description: "Do 5 gentle stretches or jumping jacks", Duration: "1 min"},
	{ID: "smile-exercise", Emoji: "😊", Title: "Smile Exercise", Description: "Practice smiling for 30 seconds - it can actually boost your mood!", Duration: "30 sec"},
	{ID: "brain-break", Emoji: "🧠", Title: "Brain Break", Description: "Close your eyes and count slowly to 30", Duration: "30 sec"},
	{ID: "deep-breath", Emoji: "🌬️", Title: "Deep Breath", Description: "Take 5 deep breaths, holding each for 4 seconds", Duration: "1 min"},
}

var distractions = []Distraction{
	{ID: "oxygen-fact", Type: "fact", Title: "Amazing Fact", Content: "Your brain uses about 20% of all the oxygen you breathe! It's a real energy consumer!"},
	{ID: "electricity-fact", Type: "fact", Title: "Brain Fact", Content: "Your brain generates enough electricity to power a small light bulb, even when you're sleeping."},
	{ID: "atoms-joke", Type: "joke", Title: "Quick Laugh", Content: "Why don't scientists trust atoms? Because they make up everything!"},
	{ID: "wall-joke", Type: "joke", Title: "Silly Joke", Content: "What did one wall say to the other wall? I'll meet you at the corner!"},
	{ID: "candle-teaser", Type: "puzzle", Title: "Brain Teaser", Content: "I'm tall when I'm young, and short when I'm old. What am I?", Answer: "A candle"},
	{ID: "penny-riddle", Type: "riddle", Title: "Mind Puzzle", Content: "What has a head, a tail, is brown, and has no legs?", Answer: "A penny"},
	{ID: "egg-riddle", Type: "riddle", Title: "Quick Riddle", Content: "What has to be broken before you can use it?", Answer: "An egg"},
	{ID: "mind-quote", Type: "inspiration", Title: "Mind Quote", Content: "'The mind is everything. What you think, you become.' - Buddha"},
	{ID: "garden-quote", Type: "inspiration", Title: "Positive Thought", Content: "'Your mind is a garden. Your thoughts are the seeds. You can grow flowers or you can grow weeds.'"},
	{ID: "squares-puzzle", Type: "puzzle", Title: "Number Puzzle", Content: "Complete the sequence: 1, 4, 9, 16, 25, ?", Answer: "36 - they're perfect squares!"},
}

var affirmations = []Affirmation{
	{ID: "capable", Text: "I am capable of amazing things", Category: "confidence"},
	{ID: "strong-creative", Text: "My mind is strong and creative", Category: "confidence"},
	{ID: "believe", Text: "I believe in myself and my abilities", Category: "confidence"},
	{ID: "enough", Text: "I am enough just as I am", Category: "confidence"},
	{ID: "calm-peaceful", Text: "I am calm and peaceful", Category: "calm"},
	{ID: "release-worries", Text: "I release my worries and breathe freely", Category: "calm"},
	{ID: "peaceful-garden", Text: "My mind is a peaceful garden", Category: "calm"},
	{ID: "safe-supported", Text: "I am safe and supported", Category: "calm"},
	{ID: "growing-learning", Text: "Every day I am growing and learning", Category: "growth"},
	{ID: "challenges", Text: "Challenges help me become stronger", Category: "growth"},
	{ID: "expanding", Text: "My mind is always growing and expanding", Category: "growth"},
	{ID: "every-experience", Text: "I learn from every experience", Category: "growth"},
	{ID: "joy-within", Text: "Joy is within me right now", Category: "joy"},
	{ID: "focus-good", Text: "I choose to focus on the good", Category: "joy"},
	{ID: "deserve-happiness", Text: "I deserve happiness and fun", Category: "joy"},
	{ID: "smile-brightens", Text: "My smile brightens the world", Category: "joy"},
}

var powerThoughts = []Line{
	{ID: "stronger", Text: "You're stronger than you think. Let's prove it."},
	{ID: "grow", Text: "Every challenge you face is helping you grow."},
	{ID: "no-limits", Text: "Your potential has no limits except the ones you set."},
	{ID: "small-steps", Text: "Small steps lead to big changes. You're on the right path."},
	{ID: "not-perfect", Text: "You don't have to be perfect to be amazing."},
	{ID: "powerful-tool", Text: "Your mind is your most powerful tool. Use it wisely."},
	{ID: "possibilities", Text: "Today is full of possibilities waiting for you to discover."},
	{ID: "courage", Text: "Breathe in courage, breathe out fear."},
	{ID: "overcome", Text: "You've overcome difficult times before, and you'll do it again."},
}

var journalReplies = []Line{
	{ID: "valid", Text: "I hear you, and your feelings are completely valid. Take it one step at a time."},
	{ID: "gentle", Text: "It sounds like you've been dealing with a lot. Remember to be gentle with yourself."},
	{ID: "courage", Text: "Thank you for sharing that. It takes courage to express your feelings, and I'm here to listen."},
	{ID: "temporary", Text: "That's a lot to carry. Remember that difficult feelings are temporary, and you won't always feel this way."},
	{ID: "process", Text: "I appreciate you opening up. Sometimes just getting thoughts out can help us process them better."},
}

var moodReplies = map[string]string{
	"happy":   "Awesome! Let's keep that positive energy flowing today!",
	"sad":     "I'm here for you. Sometimes we all need a moment to feel our emotions.",
	"anxious": "Let's take a breath together. I've got some calming exercises ready.",
	"excited": "That energy is contagious! Let's channel it into something amazing!",
	"angry":   "It's okay to feel angry. Let's find a healthy way to express it.",
	"tired":   "Everyone needs rest. Let's focus on gentle activities today.",
}

package bot

// Canned copy shared across flows.
const (
	msgSorry = "🤔 Sorry, I didn't understand your request.\n\n" +
		"Here's what I can help you with:\n\n" +
		"• 🗓️ Book a table\n\n" +
		"• 🍔 Place an order\n\n" +
		"• 📋 View your reservations\n\n" +
		"• 💳 Make a payment\n\n" +
		"• ❓ Ask for help\n\n" +
		"👉 You can also type 'menu' or 'help' for a full list of options."

	msgOptions = "You can now try:\n\n" +
		"• 🔍 Search for a restaurant\n\n" +
		"• 🍔 Show menu\n\n" +
		"• 🛒 Order food\n\n" +
		"• 📋 Show current orders\n\n" +
		"• 📅 Reserve a table\n\n" +
		"• 📋 Show current reservations\n\n"

	msgGreeting = "👋 Hello! Welcome to Restaurant Bot\n\n" +
		"Here's what I can help you with:\n\n" +
		"• 🍔 Find restaurants by cuisine or location\n\n" +
		"• 📋 Show menu for a specific restaurant\n\n" +
		"• 📅 Book or cancel a reservation\n\n" +
		"• 🛍️ Place an order for pickup or delivery\n\n" +
		"• 💳 Make a payment or check its status\n\n" +
		"• 🌟 Get recommendations\n\n\n" +
		"👉 Just tell me what you'd like to do."

	msgReset = "🔄 Okay, I've reset the conversation. What would you like to do next?"

	msgLockViolation = "⚠️ You're currently working on: %s.\n\n" +
		"• Type `cancel` to reset.\n\n" +
		"• Or continue with more details."

	msgApology = "😓 Something went wrong on my end. Let's start over — what would you like to do?"

	msgAuthWelcome = "👋 Welcome to the Restaurant Bot 👋\n\nPlease type:\n\n" +
		"👉 \"login\" to sign in\n\n👉 \"signup\" to register\n"
)

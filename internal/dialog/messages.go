package dialog

// User-visible dialogue texts. Prompts use Markdown.
const (
	msgAskTitle = "Let's create a new blog post.\nPlease enter the *Title* of the post:"
	msgAskDesc  = "Got it. Now please enter the *Description* (short summary):"
	msgAskLink  = "Okay. Now please enter the *Link* to the full post/resource:"
	msgAskBody  = "Almost done. Please enter the main *Content* or details for this post:"
	msgPostDone = "Blog post created successfully!"

	msgAskAdminID      = "Please enter the *Telegram ID* of the new admin:\n(You can ask them to use @userinfobot to find their ID)"
	msgAdminInvalidID  = "Invalid ID. Please enter a numeric User ID."
	msgAdminAdded      = "User %d has been added as an admin."
	msgAdminDuplicate  = "Failed to add admin. They might already be an admin."

	msgEditAskTitle = "Editing post *%s*.\nSend the new *Title*, or \".\" to keep the current one:"
	msgEditAskDesc  = "Send the new *Description*, or \".\" to keep the current one:"
	msgEditAskLink  = "Send the new *Link*, or \".\" to keep the current one:"
	msgEditAskBody  = "Send the new *Content*, or \".\" to keep the current one:"
	msgEditDone     = "Post updated successfully!"
	msgPostMissing  = "Post not found. It may have been deleted."

	msgAskBotToken   = "Please send the *bot token* for the new child bot:"
	msgBotRegistered = "Child bot registered. Its database lives at %s."
	msgBotDuplicate  = "This bot token is already registered."

	msgFailure = "Something went wrong. Please try again later."
)

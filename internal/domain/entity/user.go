package entity

// UserState is the position of a bot user in the inspection dialog.
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // idle, waiting for a command
	StateAwaitingPhoto UserState = "awaiting_photo" // waiting for a cookie photo
	StateProcessing    UserState = "processing"     // photo is being classified
)

// User is one Telegram user talking to the inspection bot.
type User struct {
	ID     int64     // Telegram user ID
	ChatID int64     // Telegram chat ID
	State  UserState // current dialog state
}

// NewUser creates a user in the initial state.
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState moves the user to a new dialog state.
func (u *User) SetState(state UserState) {
	u.State = state
}

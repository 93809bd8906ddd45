package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/disintegration/imaging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "cookie-inspector/internal/application"
	"cookie-inspector/internal/domain/entity"
)

const (
	msgStart = `Hi! I check cookie photos from the inspection line.

Send me a photo of the conveyor and I will tell you which cookies are flipped.

Commands:
/check - start a cookie check
/help - usage notes
/cancel - abort the current check`

	msgHelp = `How it works:

1. Send a conveyor photo
2. I detect the cookies and classify each one
3. You get a verdict plus an overlay: green box = OK, red box = flipped

Tips: even lighting, camera straight above the belt.

Commands:
/check - start a check
/cancel - abort`

	msgAwaitingPhoto  = "Send a conveyor photo to check the cookies."
	msgCancelled      = "Check cancelled. Send /check to start a new one."
	msgSendPhoto      = "Please send a photo to run a cookie check."
	msgUnknownCommand = "Unknown command, see /help."
	msgProcessing     = "Analyzing the photo..."
	msgNoCookies      = "No cookies found on this photo."
	msgNotTrained     = "The classifier is not trained yet, try again later."
	msgProcessError   = "Could not process the photo, please try another shot."
)

// Bot is the Telegram front end of the inspection pipeline.
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	inspection *app.InspectionService
}

// NewBot authorizes against the Telegram API.
func NewBot(token string, users *app.UserService, inspection *app.InspectionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		users:      users,
		inspection: inspection,
	}, nil
}

// Run processes updates until the channel closes.
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.users.BeginCheck(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.users.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Highest resolution variant is last.
	photo := msg.Photo[len(msg.Photo)-1]

	data, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.finish(ctx, msg, msgProcessError)
		return
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("Error decoding photo: %v", err)
		b.finish(ctx, msg, msgProcessError)
		return
	}

	out, err := b.inspection.Inspect(ctx, img)
	switch {
	case errors.Is(err, app.ErrNoBlobs):
		b.finish(ctx, msg, msgNoCookies)
		return
	case errors.Is(err, app.ErrNotTrained):
		b.finish(ctx, msg, msgNotTrained)
		return
	case err != nil:
		log.Printf("Error inspecting photo: %v", err)
		b.finish(ctx, msg, msgProcessError)
		return
	}

	verdict := out.Verdict
	var text string
	if verdict.Pass() {
		text = fmt.Sprintf("All %d cookies are face up.", len(verdict.Blobs))
	} else {
		text = fmt.Sprintf("%d of %d cookies are FLIPPED.", verdict.FlippedCount(), len(verdict.Blobs))
	}

	overlay := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "verdict.jpg",
		Bytes: out.Overlay,
	})
	overlay.Caption = text
	if _, err := b.api.Send(overlay); err != nil {
		log.Printf("Error sending overlay: %v", err)
		b.sendMessage(msg.Chat.ID, text)
	}

	b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// finish reports the outcome and returns the user to the main menu.
func (b *Bot) finish(ctx context.Context, msg *tgbotapi.Message, text string) {
	b.sendMessage(msg.Chat.ID, text)
	b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// downloadFile fetches a Telegram file by ID.
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

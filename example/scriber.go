package main

import (
	"context"
	"fmt"
	"os"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	scriber "github.com/scriberio/scriber-go"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	c, err := scriber.New(&scriber.Options{
		APIKey: os.Getenv("SCRIBER_API_KEY"),
		AppID:  os.Getenv("SCRIBER_APP_ID"),
		Logger: logger,
	})
	if err != nil {
		panic(err)
	}

	userID := uuid.NewV4().String()
	ctx := context.Background()

	if err := c.RecordEvent(ctx, userID, "example_started"); err != nil {
		panic(err)
	}

	err = c.RecordEvents(ctx, userID, []scriber.Event{
		{Type: scriber.EventTypeAppStart, Info: map[string]any{}},
		{Type: scriber.EventTypeSetUserInfo, Info: map[string]any{"plan": "free"}},
		{Type: scriber.EventTypeRecordPurchase, Info: map[string]any{
			"product_id": "com.example.premium",
			"price":      "0.99",
			"currency":   "USD",
		}},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("events recorded for", userID)
}

package utils

import (
	"context"
	"fmt"

	"unifix/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FirebaseClients initializes the Firebase app and returns the Firestore and
// Messaging clients. Callers own the returned clients and pass them down
// explicitly; nothing is stored globally.
func FirebaseClients(ctx context.Context) (*firestore.Client, *messaging.Client, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	var fbCfg *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opt)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}

	return fsClient, msgClient, nil
}

// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"branchaudit/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App

// FirebaseInit initializes the Firebase App used for Firestore and anonymous identities.
func FirebaseInit(ctx context.Context) (*firebase.App, error) {
	if FirebaseApp != nil {
		return FirebaseApp, nil
	}

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var conf *firebase.Config
	if id := config.AppConfig.FirebaseProjectID; id != "" {
		conf = &firebase.Config{ProjectID: id}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	FirebaseApp = app
	return app, nil
}

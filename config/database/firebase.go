package database

import (
	"PlateTrail/config/environment"
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client
var AuthClient *auth.Client

// InitFirebase initializes the Firebase app plus Firestore and Auth clients
// from base64-encoded service account credentials. Only called when the
// firestore storage backend is selected.
func InitFirebase(ctx context.Context) error {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID environment variable is missing")
	}

	config := &firebase.Config{
		ProjectID: projectID,
	}
	app, err := firebase.NewApp(ctx, config, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	FirebaseApp = app

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("failed to create Firestore client: %w", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase Auth client: %w", err)
	}

	return nil
}

// GetFirestoreClient returns the Firestore client instance
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}

func GetFirebaseAuthClient() *auth.Client {
	return AuthClient
}

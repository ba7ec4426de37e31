// Package cloud owns everything that talks to Firebase: SDK initialization,
// the Firestore snapshot repository and the Auth-backed identity provider.
package cloud

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/om607397-wq/namaa/internal/config"
)

// Clients bundles the initialized Firebase service clients.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Init initializes the Firebase Admin SDK and returns Firestore and Auth
// clients. Credentials come from a service-account file, a base64-encoded
// service-account JSON, or Application Default Credentials, in that order of
// preference.
func Init(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Clients, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cloud.Init: config cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case cfg.GoogleApplicationCredentials != "":
		if _, err := os.Stat(cfg.GoogleApplicationCredentials); os.IsNotExist(err) {
			log.Warn("credentials file does not exist, relying on environment ADC",
				zap.String("path", cfg.GoogleApplicationCredentials))
		}
		log.Info("initializing Firebase with credentials file",
			zap.String("path", cfg.GoogleApplicationCredentials))
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleApplicationCredentials))
	case cfg.FirebaseServiceAccountJSONBase64 != "":
		log.Info("initializing Firebase with base64 service account JSON")
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("decode service account JSON: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		log.Info("initializing Firebase with Application Default Credentials")
	}

	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	log.Info("Firebase clients initialized",
		zap.String("project_id", cfg.FirebaseProjectID))
	return &Clients{Firestore: fsClient, Auth: authClient}, nil
}

// Close releases the Firestore connection.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}

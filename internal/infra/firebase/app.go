// Package firebase builds the Firebase app shared by auth, Firestore and messaging.
package firebase

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the dependencies of the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app. It returns nil when the firebase section is
// absent so that self-hosted deployments can run without a Google project.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("[Firebase] Not configured, hosted services disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("[Firebase] App initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

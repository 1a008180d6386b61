package cmd

import (
	"errors"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aweris/ghcas"
	"github.com/aweris/ghcas/internal/logging"
	"github.com/aweris/ghcas/internal/store"
)

// session bundles what a command needs. Fields not requested are nil.
type session struct {
	logger   *zap.Logger
	uploader *ghcas.Uploader
	records  *store.SQLStore
}

// openSession builds the logger and uploader from configuration and, with
// withStore, opens the record database. The returned release func must be
// called once the command is done.
func openSession(withStore bool) (*session, func() error, error) {
	logger, _ := logging.New(viper.GetString("log_level"))

	up, err := newUploader(logger)
	if err != nil {
		return nil, nil, err
	}

	s := &session{logger: logger, uploader: up}
	if withStore {
		if s.records, err = openStore(logger); err != nil {
			return nil, nil, err
		}
	}

	release := func() error {
		// Sync on a console stderr returns EINVAL.
		_ = logger.Sync()
		if s.records != nil {
			return s.records.Close()
		}
		return nil
	}
	return s, release, nil
}

func newUploader(logger *zap.Logger) (*ghcas.Uploader, error) {
	if viper.GetString("owner") == "" || viper.GetString("repo") == "" || viper.GetString("branch") == "" {
		return nil, errors.New("owner, repo and branch must be configured")
	}

	return ghcas.New(
		viper.GetString("token"),
		viper.GetString("owner"),
		viper.GetString("repo"),
		viper.GetString("branch"),
		viper.GetString("store_path"),
		ghcas.WithCDN(viper.GetBool("cdn")),
		ghcas.WithAPIURL(viper.GetString("api_url")),
		ghcas.WithLogger(logger),
	)
}

func openStore(logger *zap.Logger) (*store.SQLStore, error) {
	return store.Open(viper.GetString("db"), store.Options{Logger: logger})
}

package commands

import (
	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
	"github.com/DrCognito/StaticAnalysisSite/internal/web"
)

// openLoader indexes the plot directory
func (a *app) openLoader() (*metadata.Loader, error) {
	idx, err := metadata.BuildIndex(afero.NewOsFs(), a.cfg.PlotDirectory, a.cfg.MetadataFilename)
	if err != nil {
		return nil, err
	}
	if idx.Len() == 0 {
		logging.Warn("No metadata files found",
			"plot_directory", a.cfg.PlotDirectory,
			"filename", a.cfg.MetadataFilename)
	}
	return metadata.NewLoader(idx, a.cfg.DefaultDataset)
}

// openServer builds the web server over the configured plot directory
func (a *app) openServer(static bool) (*web.Server, error) {
	loader, err := a.openLoader()
	if err != nil {
		return nil, err
	}
	return web.New(loader, web.Config{
		Title:   a.cfg.Site.Title,
		BaseURL: a.cfg.Site.BaseURL,
		Static:  static,
	})
}

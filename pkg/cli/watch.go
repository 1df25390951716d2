package cli

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCommand creates the watch command: a development helper that
// re-resolves whenever composer rewrites its install state.
func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve the module list whenever the composer install state changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			// Resolve once up front so the artifact reflects the current
			// state before the first change arrives.
			if err := rt.orch.Run(); err != nil {
				rt.log.WithError(err).Error("Initial resolution failed")
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			installState := rt.repo.Path()
			// Watch the directory: composer replaces installed.json by
			// rename, which drops a watch placed on the file itself.
			if err := watcher.Add(filepath.Dir(installState)); err != nil {
				return err
			}
			rt.log.Infof("Watching %s", installState)

			for {
				select {
				case <-cmd.Context().Done():
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Base(event.Name) != filepath.Base(installState) {
						continue
					}
					if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
						continue
					}

					rt.log.Debug("Install state changed, re-resolving")
					if err := rt.orch.Run(); err != nil {
						rt.log.WithError(err).Error("Resolution failed")
					}

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					rt.log.WithError(err).Warn("Watcher error")
				}
			}
		},
	}
}

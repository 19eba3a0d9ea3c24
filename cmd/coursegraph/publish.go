// Copyright Arbor Learning Co., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborlearn/coursegraph/internal/graph"
	"github.com/arborlearn/coursegraph/internal/publish"
	"github.com/arborlearn/coursegraph/pkg/types"
)

var publishCmd = &cobra.Command{
	Use:   "publish [files...]",
	Short: "Upload graph artifacts to the frontend host over SFTP",
	Long: `Publish uploads generated artifacts to the frontend host. Without
arguments it uploads the graph document from the data directory. The
SFTP password is read from .secrets/sftp-password.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().String("host", "", "SFTP host")
	publishCmd.Flags().Int("port", 0, "SFTP port (default 22)")
	publishCmd.Flags().String("user", "", "SFTP user")
	publishCmd.Flags().String("remote-dir", "", "remote destination directory")
	publishCmd.Flags().Bool("insecure", false, "skip host key verification")

	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		host = viper.GetString("publish.host")
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = viper.GetInt("publish.port")
	}
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = viper.GetString("publish.user")
	}
	remoteDir, _ := cmd.Flags().GetString("remote-dir")
	if remoteDir == "" {
		remoteDir = viper.GetString("publish.remote_dir")
	}
	insecure, _ := cmd.Flags().GetBool("insecure")
	if !insecure {
		insecure = viper.GetBool("publish.insecure_ignore_host_key")
	}

	cfg := types.PublishConfig{
		Host:                  host,
		Port:                  port,
		User:                  user,
		Password:              secretDefault("sftp-password", viper.GetString("publish.password")),
		RemoteDir:             remoteDir,
		InsecureIgnoreHostKey: insecure,
	}

	files := args
	if len(files) == 0 {
		files = []string{filepath.Join(dataDir(cmd), graph.GraphFileName)}
	}

	for _, f := range files {
		if err := publish.Upload(ctx, cfg, f, filepath.Base(f)); err != nil {
			return err
		}
		fmt.Printf("uploaded %s\n", filepath.Base(f))
	}
	return nil
}

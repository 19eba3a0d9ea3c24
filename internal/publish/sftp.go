// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package publish uploads generated graph artifacts to the frontend
// host over SFTP. See docs/ARCHITECTURE.md § Publishing.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/arborlearn/coursegraph/pkg/types"
)

const dialTimeout = 20 * time.Second

// Upload copies localPath to cfg.RemoteDir/remoteName on the configured
// host. The file lands under a temporary name and is renamed into place
// so the frontend never reads a half-written artifact.
func Upload(ctx context.Context, cfg types.PublishConfig, localPath, remoteName string) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return fmt.Errorf("publish: host, user, and password are required")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if !cfg.InsecureIgnoreHostKey {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("publish: resolving home directory: %w", err)
		}
		kh, err := knownhosts.New(filepath.Join(home, ".ssh", "known_hosts"))
		if err != nil {
			return fmt.Errorf("publish: loading known_hosts (set insecure_ignore_host_key to skip verification): %w", err)
		}
		hostKeyCallback = kh
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         dialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	// ssh.Dial has no context support; race it against ctx.
	type dialResult struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialResult, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialResult{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		return fmt.Errorf("publish: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("publish: dial %s: %w", addr, r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("publish: sftp client: %w", err)
	}
	defer sftpCli.Close()

	if err := sftpCli.MkdirAll(cfg.RemoteDir); err != nil {
		return fmt.Errorf("publish: ensuring %s: %w", cfg.RemoteDir, err)
	}

	local, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("publish: opening %s: %w", localPath, err)
	}
	defer local.Close()

	finalPath := path.Join(cfg.RemoteDir, remoteName)
	tempPath := finalPath + ".uploading"

	remote, err := sftpCli.Create(tempPath)
	if err != nil {
		return fmt.Errorf("publish: creating %s: %w", tempPath, err)
	}

	if _, err := io.Copy(remote, local); err != nil {
		remote.Close()
		sftpCli.Remove(tempPath)
		return fmt.Errorf("publish: uploading %s: %w", remoteName, err)
	}
	if err := remote.Close(); err != nil {
		return fmt.Errorf("publish: closing %s: %w", tempPath, err)
	}

	// Rename over any previous artifact.
	sftpCli.Remove(finalPath)
	if err := sftpCli.Rename(tempPath, finalPath); err != nil {
		return fmt.Errorf("publish: renaming into place: %w", err)
	}

	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"floroz/pkg/version"
)

func main() {
	customPath := flag.String("path", "", "custom install directory")
	flag.Parse()

	if err := install(*customPath); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Success.Println("floroz installed successfully!")
	fmt.Println("Run 'floroz version' to verify the CLI is available in your PATH.")
}

func install(targetDir string) error {
	repoRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to determine working directory: %w", err)
	}

	binaryName := "floroz"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	buildOutput := filepath.Join(repoRoot, binaryName)

	pterm.Info.Println("Building floroz CLI...")
	buildCmd := exec.Command("go", "build", "-ldflags", ldflags(repoRoot), "-o", buildOutput, "./cmd/floroz")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	buildCmd.Dir = repoRoot
	if err := buildCmd.Run(); err != nil {
		return fmt.Errorf("go build failed: %w", err)
	}
	defer os.Remove(buildOutput)

	if targetDir == "" {
		targetDir = defaultInstallDir()
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("unable to create install directory: %w", err)
	}

	destPath := filepath.Join(targetDir, binaryName)
	pterm.Info.Printfln("Installing to %s", destPath)

	if err := copyFile(buildOutput, destPath); err != nil {
		return fmt.Errorf("failed to copy binary (try running with elevated permissions): %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(destPath, 0o755); err != nil {
			return fmt.Errorf("failed to set executable bit: %w", err)
		}
	}

	return nil
}

// ldflags stamps the build metadata of pkg/version into the binary.
func ldflags(repoRoot string) string {
	commit := "development"
	out, err := exec.Command("git", "-C", repoRoot, "rev-parse", "--short", "HEAD").Output()
	if err == nil {
		commit = strings.TrimSpace(string(out))
	}

	const pkg = "floroz/pkg/version"
	return strings.Join([]string{
		fmt.Sprintf("-X %s.Version=%s", pkg, version.Version),
		fmt.Sprintf("-X %s.GitCommit=%s", pkg, commit),
		fmt.Sprintf("-X %s.BuildDate=%s", pkg, time.Now().UTC().Format("2006-01-02")),
	}, " ")
}

func defaultInstallDir() string {
	switch runtime.GOOS {
	case "windows":
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, "Programs", "floroz")
		}
		return filepath.Join(os.TempDir(), "floroz")
	default:
		return "/usr/local/bin"
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}


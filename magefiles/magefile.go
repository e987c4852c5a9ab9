//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin  = "bin/employee-admin"
	fakeAPIBin = "bin/employee-fakeapi"
)

// Dbup runs dbmate to apply db migrations for the fake API.
func Dbup() error {
	if _, err := exec.LookPath("dbmate"); err != nil {
		fmt.Println(">> dbmate not found; install with:")
		fmt.Println("   go install github.com/amacneil/dbmate/v2@latest")
		return err
	}
	fmt.Println(">> dbmate up")
	return sh.Run("dbmate", "up")
}

// Build tidies deps, then compiles both binaries into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd/server"); err != nil {
		return err
	}
	fmt.Println(">> Building fake api binary...")
	return sh.Run("go", "build", "-o", fakeAPIBin, "./cmd/fakeapi")
}

// Run builds then executes the admin server. API_BASE_URL must point at a
// running employee API.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server...")
	return sh.RunV("./" + serverBin)
}

// FakeAPI migrates the local database and serves the employee API from it.
func FakeAPI() error {
	mg.Deps(Dbup)
	fmt.Println(">> Starting fake api (go run)...")
	return sh.RunV("go", "run", "./cmd/fakeapi")
}

// Dev runs the fake API in the background and the admin server in the
// foreground. Ctrl-C stops both.
func Dev() error {
	mg.Deps(Dbup)

	fmt.Println(">> Starting fake api...")
	api := exec.Command("go", "run", "./cmd/fakeapi")
	api.Stdout = os.Stdout
	api.Stderr = os.Stderr
	if err := api.Start(); err != nil {
		return fmt.Errorf("start fake api: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = append(os.Environ(), "APP_ENV=development")
	if err := server.Start(); err != nil {
		api.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	// Wait for Ctrl-C then cleanly stop both processes.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Signal(syscall.SIGTERM)
	api.Process.Signal(syscall.SIGTERM)
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "employees.db"
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Install builds and installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	if err := sh.Run("go", "install", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/fakeapi")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}

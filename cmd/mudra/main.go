package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("Mudra - Hand Pointer Control")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the pipeline; pointer control stays off until toggled from the tray
	a := app.New(app.Config{Store: st})
	if err := a.LoadSettings(); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
	})

	t := tray.New()

	// Fan each cycle out to the dashboard and the tray
	a.OnCycle(func(out app.Output) {
		srv.Pointer().Publish(server.PointerUpdate{
			X:      out.X,
			Y:      out.Y,
			Action: string(out.Action),
			Hand:   out.Hand,
		})
		if out.Matched && out.Action != gesture.ActionMove {
			t.SetLastAction(string(out.Action))
		}
	})

	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		if enabled {
			log.Println("Pointer control enabled")
		} else {
			log.Println("Pointer control disabled")
		}
	})
	t.OnDashboard(func() {
		url := "http://localhost" + serverAddr
		if err := exec.Command("open", url).Start(); err != nil {
			log.Printf("Failed to open dashboard: %v (visit %s)", err, url)
		}
	})
	t.OnQuit(func() {
		a.Stop()
	})

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := a.Start(); err != nil {
		log.Printf("Failed to start capture pipeline: %v", err)
	}

	// Blocks until Quit is chosen from the tray menu
	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

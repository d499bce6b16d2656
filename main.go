package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/antibyte/retrobasic/pkg/auth"
	"github.com/antibyte/retrobasic/pkg/basic"
	"github.com/antibyte/retrobasic/pkg/configuration"
	"github.com/antibyte/retrobasic/pkg/logger"
	"github.com/antibyte/retrobasic/pkg/shared"
	"github.com/antibyte/retrobasic/pkg/storage"
	"github.com/antibyte/retrobasic/pkg/terminal"

	"github.com/mattn/go-isatty"
)

func main() {
	configPath := flag.String("config", "settings.cfg", "path to the configuration file")
	serve := flag.Bool("serve", false, "run the websocket terminal server instead of the console REPL")
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for the given password and exit")
	flag.Parse()

	// Initialize configuration before everything else.
	if err := configuration.Initialize(*configPath); err != nil {
		fmt.Printf("Error initializing configuration: %v\n", err)
		return
	}

	if err := logger.Initialize(); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		return
	}
	defer logger.Close()
	logger.ConfigInfo("System started - configuration loaded from: %s", *configPath)

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			fmt.Printf("Error hashing password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	fs, closeStore := openStore()
	defer closeStore()

	if *serve {
		runServer(fs)
	} else {
		runConsole(fs)
	}
}

// openStore builds the program storage backend selected in [Storage].
func openStore() (basic.FileSystem, func()) {
	backend := configuration.GetString("Storage", "backend", "disk")
	if backend == "sqlite" {
		dbPath := configuration.GetString("Storage", "database_file", "retrobasic.db")
		db, err := storage.InitDB(dbPath)
		if err != nil {
			logger.Fatal(logger.AreaStorage, "Database initialization failed: %v", err)
		}
		if err := storage.CreateTables(db); err != nil {
			logger.Fatal(logger.AreaStorage, "Table creation failed: %v", err)
		}
		logger.Info(logger.AreaStorage, "Program database ready: %s", dbPath)
		return storage.NewSQLiteStore(db), func() { db.Close() }
	}
	dir := configuration.GetString("Storage", "programs_dir", "")
	return storage.NewDiskStore(dir), func() {}
}

// runConsole is the interactive line-oriented REPL. The banner and prompt
// are suppressed when stdin is not a terminal, so piped program text
// produces clean output.
func runConsole(fs basic.FileSystem) {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	in := basic.New("console", fs)

	// The drain goroutine owns stdout. A prompt message acts as a
	// sequencing barrier: the channel is FIFO, so by the time the prompt
	// is printed all earlier output is on screen.
	promptReady := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range in.OutputChan {
			switch msg.Type {
			case shared.MessageTypeText:
				if msg.NoNewline {
					fmt.Print(msg.Content)
				} else {
					fmt.Println(msg.Content)
				}
			case shared.MessageTypeClear:
				if interactive {
					fmt.Print("\033[2J\033[H")
				}
			case shared.MessageTypePrompt:
				if interactive {
					fmt.Print(msg.PromptSymbol)
				}
				promptReady <- struct{}{}
			}
		}
	}()

	if interactive {
		fmt.Println("retrobasic - Tiny BASIC Interpreter")
		fmt.Println("Commands: LOAD, SAVE, RUN, LIST, NEW, QUIT")
		fmt.Println("Statements: PRINT, LET, GOTO, IF, END, DIM")
		fmt.Println("Variables: A-Z (integers). Type line number + statement to add a line.")
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		in.OutputChan <- shared.Message{Type: shared.MessageTypePrompt, PromptSymbol: "> "}
		<-promptReady
		if !scanner.Scan() {
			break
		}
		if in.Execute(scanner.Text()) {
			break
		}
	}

	in.Close()
	<-done
	if interactive {
		fmt.Println("Goodbye.")
	}
}

// runServer exposes sessions over websockets.
func runServer(fs basic.FileSystem) {
	handler := terminal.NewHandler(fs)

	mux := http.NewServeMux()
	mux.HandleFunc("/session", auth.HandleSession)
	mux.HandleFunc("/ws", handler.HandleWebSocket)

	addr := configuration.GetString("Server", "listen_address", ":8080")
	logger.Info(logger.AreaGeneral, "Server listening on %s", addr)
	fmt.Printf("retrobasic server listening on %s\n", addr)

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal(logger.AreaGeneral, "Server failed: %v", err)
	}
}

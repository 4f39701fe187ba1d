// Запуск для разработки: go run launcher.go [-seed]
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	seed := flag.Bool("seed", false, "заполнить базу тестовыми данными перед запуском")
	flag.Parse()

	fmt.Println("Запуск AquaMate...")

	clientName := "aquamate"
	if runtime.GOOS == "windows" {
		clientName = "aquamate.exe"
	}

	if *seed {
		fmt.Println("Заполняем базу...")
		if err := run("go", "run", "./cmd/seed"); err != nil {
			fmt.Printf("Ошибка seed: %v\n", err)
			return
		}
	}

	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		if err := run("go", "build", "-o", clientName, "./cmd/aquamate"); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		// если не винда даём права
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Сервер запущен")
	// пишем как запускать клиента
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\aquamate.exe use 1")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./aquamate use 1")
	}

	server.Wait()
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

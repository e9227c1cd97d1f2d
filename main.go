package main

import (
	"github.com/OliveiraNt/kafka-shell/cmd"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	cmd.Execute()
}

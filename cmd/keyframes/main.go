package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/ivlev/keyframes/internal/config"
	"github.com/ivlev/keyframes/internal/system"
)

var version = "dev"

const usage = `Использование: keyframes [флаги] <команда> [аргументы]

Команды:
  show                                 параметры и ключевые кадры документа
  check [документ...]                  проверка инвариантов (по умолчанию: все документы)
  add <свойство> <кадр> [значение] [тип] добавить ключевой кадр (без значения: разбить кривую)
  remove <свойство> <кадр>             удалить ключевой кадр
  move <свойство> <кадр> <новый> [значение] переместить ключевой кадр
  interp <свойство> <кадр> <тип>       сменить тип интерполяции
  value <свойство> <кадр> <значение>   сменить значение
  simplify                             оставить только крайние линейные кадры
  unanimate                            убрать простую анимацию
  trim <in> <out>                      обрезать окно эффекта
  export <свойство>                    выражение ffmpeg для свойства
  watch                                следить за документом и перепроверять его

Флаги:
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	configPtr := flag.String("config", "", "Файл настроек (.toml или .yaml)")
	metadataPtr := flag.String("metadata", "", "Метаданные эффектов (по умолчанию: input/metadata.yaml)")
	documentPtr := flag.String("document", "", "Документ эффекта (по умолчанию: самый свежий в input/effects/)")
	policyPtr := flag.String("policy", "", "Ограничение значений: none, monotonic")
	workersPtr := flag.Int("workers", 0, "Потоки для check (0 - по числу CPU)")
	statsPtr := flag.Bool("stats", false, "Показать потребление памяти")
	versionPtr := flag.Bool("version", false, "Версия")

	flag.Parse()

	if *versionPtr {
		fmt.Println(version)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[!] Не удалось прочитать .env: %v", err)
	}

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка настроек: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("[-] Ошибка окружения: %v", err)
	}
	cfg.BuildVersion = version

	if *metadataPtr != "" {
		cfg.MetadataPath = *metadataPtr
	}
	if *documentPtr != "" {
		cfg.DocumentPath = *documentPtr
	}
	if *policyPtr != "" {
		cfg.Policy = *policyPtr
	}
	if *workersPtr > 0 {
		cfg.Workers = *workersPtr
	}
	if *statsPtr {
		cfg.ShowStats = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg, flag.Arg(0), flag.Args()[1:])
	if cfg.ShowStats {
		fmt.Printf("[*] Ресурсы: %s\n", system.CollectStats())
	}
	if err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, command string, args []string) error {
	if command == "check" {
		return runCheck(ctx, cfg, args)
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	switch command {
	case "show":
		return s.show()
	case "watch":
		return s.watch(ctx)
	case "export":
		return s.export(args)
	case "add", "remove", "move", "interp", "value", "simplify", "unanimate", "trim":
		if err := s.edit(command, args); err != nil {
			return err
		}
		return s.save()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tapdungeon/internal/ops"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backup":
		if err := cmdBackup(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "backup failed:", err)
			os.Exit(1)
		}
	case "restore":
		if err := cmdRestore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "restore failed:", err)
			os.Exit(1)
		}
	case "verify":
		if err := cmdVerify(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "verify failed:", err)
			os.Exit(1)
		}
	case "drill":
		if err := cmdDrill(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "drill failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "tapdungeon-"+ts+".tar.gz")
	}

	if err := ops.BackupSaves(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	if err := ops.RestoreSaves(*archive, *target); err != nil {
		return err
	}
	return ops.VerifySave(filepath.Join(*target, "save.json"))
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	save := fs.String("save", filepath.Join("data", "save.json"), "save file to check")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := ops.VerifySave(*save); err != nil {
		return err
	}
	fmt.Println("ok:", *save)
	return nil
}

func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "tapdungeon-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "tapdungeon-drill-restore-"+ts)

	if err := ops.BackupSaves(*dataDir, archive); err != nil {
		return err
	}
	if err := ops.RestoreSaves(archive, restoreDir); err != nil {
		return err
	}

	srcDigest, err := ops.DirDigest(*dataDir)
	if err != nil {
		return err
	}
	restoreDigest, err := ops.DirDigest(restoreDir)
	if err != nil {
		return err
	}
	if srcDigest != restoreDigest {
		return fmt.Errorf("digest mismatch after restore: src=%s restored=%s", srcDigest, restoreDigest)
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	fmt.Println("digest:", srcDigest)
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  tapdungeon-ops backup  --data-dir data --out backups/backup.tar.gz")
	fmt.Println("  tapdungeon-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  tapdungeon-ops verify  --save data/save.json")
	fmt.Println("  tapdungeon-ops drill   --data-dir data --work-dir /tmp")
}

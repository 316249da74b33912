package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/turtle3d-xyz/go-turtle3d/store"
)

func save(args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	db := fs.String("db", "skeletons.db", "SQLite catalog file")
	name := fs.String("name", "", "Skeleton name (default: script name)")
	configPath := fs.String("config", "", "YAML config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: turtle3d save <script> [options]

Interpret a turtle script and save the skeleton to a SQLite catalog.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}

	skel, _, err := buildFromScript(fs.Arg(0), *configPath)
	if err != nil {
		return err
	}
	if *name == "" {
		*name = fs.Arg(0)
	}

	st, err := store.NewSQLiteStore(*db)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Save(context.Background(), *name, skel)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s as %s (%d strands, %d points, %d props)\n",
		meta.Name, meta.ID, meta.Strands, meta.Points, meta.Props)
	return nil
}

func list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	db := fs.String("db", "skeletons.db", "SQLite catalog file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.NewSQLiteStore(*db)
	if err != nil {
		return err
	}
	defer st.Close()

	metas, err := st.List(context.Background())
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("Catalog is empty")
		return nil
	}
	for _, m := range metas {
		fmt.Printf("%s  %-20s  strands=%-4d points=%-6d props=%-4d  %s\n",
			m.ID, m.Name, m.Strands, m.Points, m.Props,
			m.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func deleteCmd(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	db := fs.String("db", "skeletons.db", "SQLite catalog file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("skeleton id required")
	}

	st, err := store.NewSQLiteStore(*db)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(context.Background(), fs.Arg(0)); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", fs.Arg(0))
	return nil
}

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"storages.dev/storages/storage"
)

func printPaths(ctx *cli.Context, e *env) error {
	w := ctx.App.Writer
	printPath := func(name, path string, err error) {
		if err != nil {
			fmt.Fprintf(w, "%-20s unavailable (%v)\n", name, err)
			return
		}
		fmt.Fprintf(w, "%-20s %s\n", name, path)
	}

	for _, status := range e.svc.Resolver.Directories() {
		printPath(status.Kind.String(), status.Path, status.Err)
	}
	custom, err := e.dirs.NamedDir("custom")
	printPath("custom", custom, err)
	pictures, err := e.dirs.PicturesDir()
	printPath("external-pictures", pictures, err)
	return nil
}

func ensureFile(ctx *cli.Context, e *env) error {
	result := e.svc.EnsureFile(e.location, e.cfg.FileName)
	if err := check(result); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, result.URI)
	return nil
}

func writeText(ctx *cli.Context, e *env) error {
	if ctx.NArg() != 1 {
		return cli.Exit("write takes exactly one TEXT argument", 2)
	}
	result := e.svc.WriteText(e.location, e.cfg.FileName, ctx.Args().First(), storage.WithEncoding(e.encoding))
	if err := check(result); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "wrote %s\n", result.URI)
	return nil
}

func readText(ctx *cli.Context, e *env) error {
	result := e.svc.ReadText(e.location, e.cfg.FileName, storage.WithEncoding(e.encoding))
	if err := check(result); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, result.Text())
	return nil
}

func removeFile(ctx *cli.Context, e *env) error {
	return check(e.svc.Remove(e.location, e.cfg.FileName))
}

// savePhotos decodes every image argument and saves it as a photo. Saves run
// concurrently; each photo gets its own file so they never contend.
func savePhotos(ctx *cli.Context, e *env) error {
	if ctx.NArg() == 0 {
		return cli.Exit("photo needs at least one image", 2)
	}

	paths := ctx.Args().Slice()
	results := make([]storage.OperationResult, len(paths))

	g := errgroup.Group{}
	g.SetLimit(max(ctx.Int("workers"), 1))
	for i, path := range paths {
		g.Go(func() error {
			img, err := decodeImage(path)
			if err != nil {
				results[i] = storage.Failed("decode", path, err)
				return nil
			}
			results[i] = e.saver.Save(e.location, img)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, result := range results {
		if result.Success {
			fmt.Fprintf(ctx.App.Writer, "%s -> %s\n", paths[i], result.URI)
			continue
		}
		failed++
		fmt.Fprintf(ctx.App.ErrWriter, "%s: %s\n", paths[i], result.ErrorMessage())
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("failed to save %d of %d photos", failed, len(paths)), 1)
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

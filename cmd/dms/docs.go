package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

func runDocs(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 {
		return docsUsage()
	}

	sub := args[0]
	rest := args[1:]
	switch sub {
	case "list":
		return runDocsList(cmdCtx, rest)
	case "get":
		return runDocsGet(cmdCtx, rest)
	case "upload":
		return runDocsUpload(cmdCtx, rest)
	case "upload-form":
		return runDocsUploadForm(cmdCtx, rest)
	case "delete":
		return runDocsDelete(cmdCtx, rest)
	case "download-url":
		return runDocsDownloadURL(cmdCtx, rest)
	default:
		if err := writef(os.Stderr, "unknown docs subcommand %q\n\n", sub); err != nil {
			return err
		}
		return docsUsage()
	}
}

func docsUsage() error {
	return writef(os.Stdout, `Usage: dms docs <subcommand> [flags]

Subcommands:
  list           List documents in your scope (--category, --department, --search)
  get            Show one document by id
  upload         Upload a file and create its document record
  upload-form    Show the categories and departments available for upload
  delete         Delete a document by id
  download-url   Resolve the signed download URL for a file key
`)
}

type docsListOptions struct {
	Category   int64
	Department int64
	Search     string
	Output     outputOptions
}

func runDocsList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("docs list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts docsListOptions
	fs.Int64Var(&opts.Category, "category", 0, "Filter by category id")
	fs.Int64Var(&opts.Department, "department", 0, "Filter by department id")
	fs.StringVar(&opts.Search, "search", "", "Filter by text query")
	addOutputFlags(fs, &opts.Output)
	if err := fs.Parse(args); err != nil {
		return err
	}

	browser := cmdCtx.Services.Browser
	ctx := cmdCtx.Ctx

	var (
		docs []model.Document
		err  error
	)
	switch {
	case opts.Category != 0:
		docs, err = browser.FilterByCategory(ctx, opts.Category)
	case opts.Department != 0:
		docs, err = browser.FilterByDepartment(ctx, opts.Department)
	case opts.Search != "":
		docs, err = browser.Search(ctx, opts.Search)
	default:
		docs, err = browser.Load(ctx)
	}
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, opts.Output, docs, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "ID\tTITLE\tCATEGORY\tDEPARTMENT\tFILE\tSIZE"); werr != nil {
			return werr
		}
		for _, d := range docs {
			if werr := writef(tw, "%d\t%s\t%d\t%d\t%s\t%d\n",
				d.ID, d.Title, d.CategoryID, d.DepartmentID, d.FileName, d.FileSize); werr != nil {
				return werr
			}
		}
		return nil
	})
}

func runDocsGet(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("docs get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "document")
	if err != nil {
		return err
	}

	doc, err := cmdCtx.Services.Browser.Get(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, out, doc, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "ID\tTITLE\tCATEGORY\tDEPARTMENT\tCREATED BY\tFILE KEY"); werr != nil {
			return werr
		}
		return writef(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			doc.ID, doc.Title, doc.CategoryID, doc.DepartmentID, doc.CreatedBy, doc.FileKey)
	})
}

type docsUploadOptions struct {
	Title      string
	Category   int64
	Department int64
	File       string
}

func runDocsUpload(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("docs upload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts docsUploadOptions
	fs.StringVar(&opts.Title, "title", "", "Document title")
	fs.Int64Var(&opts.Category, "category", 0, "Category id")
	fs.Int64Var(&opts.Department, "department", 0, "Department id")
	fs.StringVar(&opts.File, "file", "", "Path of the file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := model.UploadDraft{
		Title:        opts.Title,
		CategoryID:   opts.Category,
		DepartmentID: opts.Department,
	}

	if opts.File != "" {
		file, err := draftFileFromPath(opts.File)
		if err != nil {
			return err
		}
		draft.File = file
	}

	doc, err := cmdCtx.Services.Uploads.Submit(cmdCtx.Ctx, draft)
	if err != nil {
		return err
	}

	return writef(os.Stdout, "document %d created (%s)\n", doc.ID, doc.FileKey)
}

func runDocsUploadForm(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("docs upload-form", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := cmdCtx.Services.RefData.UploadForm(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, out, form, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "KIND\tID\tNAME"); werr != nil {
			return werr
		}
		for _, c := range form.Categories {
			if werr := writef(tw, "category\t%d\t%s\n", c.ID, c.Name); werr != nil {
				return werr
			}
		}
		for _, d := range form.Departments {
			if werr := writef(tw, "department\t%d\t%s\n", d.ID, d.Name); werr != nil {
				return werr
			}
		}
		return nil
	})
}

// draftFileFromPath validates the path up front and returns a draft file
// that re-opens it for each upload attempt.
func draftFileFromPath(path string) (*model.DraftFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "stat file")
	}
	if info.IsDir() {
		return nil, apperrors.Validation(fmt.Sprintf("%s is a directory", path))
	}
	return &model.DraftFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			f, openErr := os.Open(path)
			if openErr != nil {
				return nil, apperrors.Wrap(openErr, apperrors.ErrCodeValidation, "open file")
			}
			return f, nil
		},
	}, nil
}

func runDocsDelete(cmdCtx *commandContext, args []string) error {
	id, err := parseID(args, "document")
	if err != nil {
		return err
	}

	if err := cmdCtx.Services.Browser.Delete(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(os.Stdout, "document %d deleted\n", id)
}

func runDocsDownloadURL(cmdCtx *commandContext, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return apperrors.Validation("usage: dms docs download-url <file-key>")
	}

	url, err := cmdCtx.Services.Gateway.DownloadURL(cmdCtx.Ctx, args[0])
	if err != nil {
		return err
	}
	return writeln(os.Stdout, url)
}

// parseID reads a positional numeric id argument.
func parseID(args []string, noun string) (int64, error) {
	if len(args) != 1 {
		return 0, apperrors.Validation(fmt.Sprintf("exactly one %s id is required", noun))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid %s id %q", noun, args[0]))
	}
	return id, nil
}

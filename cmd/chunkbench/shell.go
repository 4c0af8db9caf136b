package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/KevoDB/chunkbench/pkg/client"
	"github.com/KevoDB/chunkbench/pkg/engine"
)

// Command completer for readline
var completer = readline.NewPrefixCompleter(
	readline.PcItem(".help"),
	readline.PcItem(".exit"),
	readline.PcItem("APPEND"),
	readline.PcItem("CLEAR"),
	readline.PcItem("ZERO"),
	readline.PcItem("READ"),
	readline.PcItem("SIZE"),
	readline.PcItem("STORE",
		readline.PcItem("WHOLE"),
		readline.PcItem("CHUNKED"),
		readline.PcItem("FLAT"),
	),
	readline.PcItem("LOAD",
		readline.PcItem("WHOLE"),
		readline.PcItem("SEQUENTIAL"),
		readline.PcItem("RANGED"),
		readline.PcItem("FLAT"),
	),
	readline.PcItem("DELETE"),
	readline.PcItem("GAP"),
	readline.PcItem("STATS"),
)

const shellHelp = `
Commands:
  .help                     - Show this help message
  .exit                     - Exit the shell

  APPEND text [times]       - Append text (times copies, default 1) to the buffer
  CLEAR                     - Empty the buffer
  ZERO                      - Overwrite the buffer with zero bytes
  READ offset size          - Print buffer bytes [offset, offset+size)
  SIZE                      - Print the buffer length

  STORE WHOLE key           - Store the buffer as one record
  STORE CHUNKED key         - Store the buffer as chunk records
  STORE FLAT offset         - Store the buffer in the flat region
  LOAD WHOLE key            - Load a whole record into the buffer
  LOAD SEQUENTIAL key       - Load chunks with one lookup per chunk
  LOAD RANGED key           - Load chunks with one range scan
  LOAD FLAT offset size     - Load bytes from the flat region

  DELETE key index          - Delete one chunk record
  GAP key                   - Report the first missing chunk of a stored buffer
  STATS                     - Print server statistics
`

// errQuit ends the shell loop
var errQuit = errors.New("quit")

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "endpoint", Aliases: []string{"e"}, Value: "localhost:7070", Usage: "server address"},
		&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "per request timeout"},
	}
}

func newClient(c *cli.Context) (*client.Client, error) {
	opts := client.DefaultOptions()
	opts.Endpoint = c.String("endpoint")
	opts.RequestTimeout = c.Duration("timeout")
	return client.NewClient(opts)
}

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "interactive shell against a running server",
		Action: shell,
		Flags:  clientFlags(),
	}
}

func shell(c *cli.Context) error {
	cl, err := newClient(c)
	if err != nil {
		return err
	}
	defer cl.Close()

	historyFile := filepath.Join(os.TempDir(), ".chunkbench_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("chunkbench:%s> ", c.String("endpoint")),
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("error initializing readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("chunkbench shell %s, connected to %s\n", version, c.String("endpoint"))
	fmt.Println("Enter .help for usage hints.")

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && line != "" {
				continue
			}
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err = executeLine(context.Background(), cl, line, rl.Stdout())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %s\n", err)
		}
	}
}

// executeLine runs one shell command against cl and prints its result to out
func executeLine(ctx context.Context, cl *client.Client, line string, out io.Writer) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToUpper(parts[0])
	args := parts[1:]

	switch cmd {
	case ".HELP":
		fmt.Fprint(out, shellHelp)
		return nil
	case ".EXIT", ".QUIT":
		return errQuit

	case "APPEND":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: APPEND text [times]")
		}
		times := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid times %q", args[1])
			}
			times = n
		}
		size, err := cl.Append(ctx, args[0], times)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "buffer is %d bytes\n", size)

	case "CLEAR":
		if err := cl.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "OK")

	case "ZERO":
		if err := cl.Zero(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "OK")

	case "READ":
		nums, err := parseInts(args, 2, "READ offset size")
		if err != nil {
			return err
		}
		text, err := cl.ReadRange(ctx, int(nums[0]), int(nums[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%q\n", text)

	case "SIZE":
		size, err := cl.Size(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, size)

	case "STORE":
		return executeStore(ctx, cl, args, out)

	case "LOAD":
		return executeLoad(ctx, cl, args, out)

	case "DELETE":
		nums, err := parseInts(args, 2, "DELETE key index")
		if err != nil {
			return err
		}
		if err := cl.DeleteChunk(ctx, nums[0], nums[1]); err != nil {
			return err
		}
		fmt.Fprintln(out, "OK")

	case "GAP":
		nums, err := parseInts(args, 1, "GAP key")
		if err != nil {
			return err
		}
		gap, found, err := cl.FindGap(ctx, nums[0])
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintln(out, "no gap")
			return nil
		}
		fmt.Fprintf(out, "chunk %d missing, %d chunks stored after it\n", gap.Index, gap.Present)

	case "STATS":
		st, err := cl.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "backend=%s chunk_size=%d cost=%s buffer=%d\n", st.Backend, st.ChunkSize, st.CostCounter, st.BufferSize)
		fmt.Fprintf(out, "whole: %d keys, %d pages\n", st.WholeMap.LiveKeys, st.WholeMap.Pages)
		fmt.Fprintf(out, "chunks: %d keys, %d pages\n", st.ChunkMap.LiveKeys, st.ChunkMap.Pages)
		fmt.Fprintf(out, "flat: %d writes, %d pages\n", st.Flat.Writes, st.Flat.Pages)

	default:
		return fmt.Errorf("unknown command %q, enter .help for usage", parts[0])
	}
	return nil
}

func executeStore(ctx context.Context, cl *client.Client, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("usage: STORE WHOLE|CHUNKED key | STORE FLAT offset")
	}
	n, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[1])
	}

	var res engine.StoreResult
	switch strings.ToUpper(args[0]) {
	case "WHOLE":
		res, err = cl.StoreWhole(ctx, n)
	case "CHUNKED":
		res, err = cl.StoreChunked(ctx, n)
	case "FLAT":
		res, err = cl.StoreFlat(ctx, n)
	default:
		return fmt.Errorf("unknown store strategy %q", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "stored %d bytes in %d chunks, cost %d\n", res.Bytes, res.Chunks, res.Cost)
	return nil
}

func executeLoad(ctx context.Context, cl *client.Client, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errors.New("usage: LOAD WHOLE|SEQUENTIAL|RANGED key | LOAD FLAT offset size")
	}
	strategy := strings.ToUpper(args[0])

	var res engine.LoadResult
	if strategy == "FLAT" {
		nums, err := parseInts(args[1:], 2, "LOAD FLAT offset size")
		if err != nil {
			return err
		}
		if res, err = cl.LoadFlat(ctx, nums[0], int(nums[1])); err != nil {
			return err
		}
	} else {
		nums, err := parseInts(args[1:], 1, "LOAD "+strategy+" key")
		if err != nil {
			return err
		}
		switch strategy {
		case "WHOLE":
			res, err = cl.LoadWhole(ctx, nums[0])
		case "SEQUENTIAL", "SEQ":
			res, err = cl.LoadChunkedSequential(ctx, nums[0])
		case "RANGED", "RANGE":
			res, err = cl.LoadChunkedRanged(ctx, nums[0])
		default:
			return fmt.Errorf("unknown load strategy %q", args[0])
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "loaded %d bytes from %d chunks, cost %d\n", res.Bytes, res.Chunks, res.Cost)
	return nil
}

func parseInts(args []string, want int, usage string) ([]uint64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	nums := make([]uint64, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		nums[i] = n
	}
	return nums, nil
}

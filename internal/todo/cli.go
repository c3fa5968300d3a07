package todo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const rule = "================================================================================"

// CLI is the interactive menu over a Service.
type CLI struct {
	svc *Service
	in  *bufio.Scanner
	out io.Writer
}

// NewCLI creates a CLI reading commands from in and writing to out.
func NewCLI(svc *Service, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.displayMenu()
		choice, ok := c.menuChoice()
		if !ok || choice == 6 {
			c.println("\nThank you for using Todo CLI! Goodbye!")
			return nil
		}

		var alive bool
		switch choice {
		case 1:
			alive = c.handleAdd(ctx)
		case 2:
			alive = c.handleView(ctx)
		case 3:
			alive = c.handleUpdate(ctx)
		case 4:
			alive = c.handleMarkComplete(ctx)
		case 5:
			alive = c.handleDelete(ctx)
		}
		if !alive {
			c.println("\nOperation cancelled.")
			return nil
		}

		if _, ok := c.prompt("\nPress Enter to continue..."); !ok {
			return nil
		}
	}
}

func (c *CLI) displayMenu() {
	c.println(rule)
	c.println(strings.Repeat(" ", 26) + "TODO CLI APPLICATION")
	c.println(rule)
	c.println("")
	c.println("1. Add Todo")
	c.println("2. View Todos")
	c.println("3. Update Todo")
	c.println("4. Mark Complete/Incomplete")
	c.println("5. Delete Todo")
	c.println("6. Exit")
	c.println("")
}

// menuChoice reads until a number in 1..6 is entered. ok is false on EOF.
func (c *CLI) menuChoice() (int, bool) {
	for {
		line, ok := c.prompt("Select an option (1-6): ")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		if n < 1 || n > 6 {
			c.println("Invalid option. Please enter a number between 1 and 6.")
			continue
		}
		return n, true
	}
}

func (c *CLI) handleAdd(ctx context.Context) bool {
	c.println("\n--- Add New Todo ---")

	title, ok := c.prompt("Enter title: ")
	if !ok {
		return false
	}
	description, ok := c.prompt("Enter description (optional): ")
	if !ok {
		return false
	}

	report(c, c.svc.Add(ctx, title, description))
	return true
}

func (c *CLI) handleView(ctx context.Context) bool {
	c.svc.List(ctx).Match(
		func(todos []Todo, _ string) { c.displayTodos(todos) },
		func(_ ErrorKind, message string) { c.printf("✗ Error: %s\n", message) },
	)
	return true
}

func (c *CLI) handleUpdate(ctx context.Context) bool {
	c.println("\n--- Update Todo ---")

	id, ok, alive := c.readID()
	if !alive {
		return false
	}
	if !ok {
		return true
	}

	var title, description *string

	answer, alive := c.prompt("Update title? (y/n): ")
	if !alive {
		return false
	}
	if yes(answer) {
		v, alive := c.prompt("Enter new title: ")
		if !alive {
			return false
		}
		title = &v
	}

	answer, alive = c.prompt("Update description? (y/n): ")
	if !alive {
		return false
	}
	if yes(answer) {
		v, alive := c.prompt("Enter new description: ")
		if !alive {
			return false
		}
		description = &v
	}

	report(c, c.svc.Update(ctx, id, title, description))
	return true
}

func (c *CLI) handleMarkComplete(ctx context.Context) bool {
	c.println("\n--- Mark Todo Complete/Incomplete ---")

	id, ok, alive := c.readID()
	if !alive {
		return false
	}
	if !ok {
		return true
	}

	answer, alive := c.prompt("Is it complete? (y/n): ")
	if !alive {
		return false
	}

	report(c, c.svc.SetCompleted(ctx, id, yes(answer)))
	return true
}

func (c *CLI) handleDelete(ctx context.Context) bool {
	c.println("\n--- Delete Todo ---")

	id, ok, alive := c.readID()
	if !alive {
		return false
	}
	if !ok {
		return true
	}

	report(c, c.svc.Remove(ctx, id))
	return true
}

// readID prompts for a todo id. ok is false for a non-numeric answer,
// alive is false on EOF.
func (c *CLI) readID() (id int64, ok, alive bool) {
	line, alive := c.prompt("Enter todo ID: ")
	if !alive {
		return 0, false, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		c.println("✗ Error: Please enter a valid number")
		return 0, false, true
	}
	return id, true, true
}

func (c *CLI) displayTodos(todos []Todo) {
	c.println("")
	c.println(rule)
	c.println(strings.Repeat(" ", 32) + "TODO LIST")
	c.println(rule)

	if len(todos) == 0 {
		c.println("No todos found. Add your first todo to get started!")
		c.println(rule)
		return
	}

	c.printf("%-4s | %-30s | %-20s | %-12s\n", "ID", "Title", "Description", "Status")
	c.println(strings.Repeat("-", len(rule)))

	for _, t := range todos {
		status := "Incomplete"
		if t.Completed {
			status = "Complete"
		}
		c.printf("%-4d | %-30s | %-20s | %-12s\n", t.ID, truncate(t.Title, 30), truncate(t.Description, 20), status)
	}

	c.println(rule)
	plural := "s"
	if len(todos) == 1 {
		plural = ""
	}
	c.printf("Total: %d todo%s\n\n", len(todos), plural)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-2]) + "..."
}

func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func report[T any](c *CLI, r Result[T]) {
	r.Match(
		func(_ T, message string) { c.printf("✓ %s\n", message) },
		func(_ ErrorKind, message string) { c.printf("✗ Error: %s\n", message) },
	)
}

// prompt writes text and reads one line. ok is false when input is exhausted.
func (c *CLI) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

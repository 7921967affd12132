// Command tui browses the feature tables written by profab extract.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sametle06/ProFAB/internal/descriptor"
	"github.com/Sametle06/ProFAB/internal/feature"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	tableStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	idStyle = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)

	// Family styles
	famPOSSUMStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	famIFeatureStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	famUnknownStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// FeatureTable describes one table under the output root.
type FeatureTable struct {
	Path       string
	Set        string
	Descriptor string
	Rows       int
	Columns    int
	Preview    []string
}

const previewRows = 100

// loadTables collects every feature table under root. Each subdirectory is
// one input set.
func loadTables(root string) ([]FeatureTable, error) {
	sets, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read output root: %w", err)
	}
	var tables []FeatureTable
	for _, set := range sets {
		if !set.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(root, set.Name()))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
				continue
			}
			tbl, err := readTable(filepath.Join(root, set.Name(), e.Name()), set.Name())
			if err != nil {
				continue
			}
			tables = append(tables, tbl)
		}
	}
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Set != tables[j].Set {
			return tables[i].Set < tables[j].Set
		}
		return tables[i].Descriptor < tables[j].Descriptor
	})
	return tables, nil
}

func readTable(path, set string) (FeatureTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return FeatureTable{}, err
	}
	defer f.Close()

	tbl := FeatureTable{Path: path, Set: set, Descriptor: descriptorFromName(filepath.Base(path))}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if tbl.Rows == 0 {
			tbl.Columns = len(strings.Split(line, "\t"))
		}
		if tbl.Rows < previewRows {
			tbl.Preview = append(tbl.Preview, line)
		}
		tbl.Rows++
	}
	if err := sc.Err(); err != nil {
		return FeatureTable{}, err
	}
	return tbl, nil
}

// descriptorFromName recovers the descriptor from a {fasta}_{descriptor}.txt
// file name by matching known descriptor suffixes, longest first.
func descriptorFromName(name string) string {
	base := strings.TrimSuffix(name, ".txt")
	var known []string
	known = append(known, descriptor.Names(descriptor.FamilyPOSSUM)...)
	known = append(known, descriptor.Names(descriptor.FamilyIFeature)...)
	sort.Slice(known, func(i, j int) bool { return len(known[i]) > len(known[j]) })
	for _, d := range known {
		if strings.HasSuffix(base, "_"+d) {
			return d
		}
	}
	if i := strings.Index(base, "_"); i >= 0 {
		return base[i+1:]
	}
	return base
}

func familyOf(desc string) string {
	fam, _, err := descriptor.Resolve(desc)
	if err != nil {
		return "unknown"
	}
	return fam.String()
}

type listItem struct {
	table FeatureTable
}

func (i listItem) FilterValue() string { return i.table.Descriptor }

func (i listItem) Title() string { return i.table.Descriptor }

func (i listItem) Description() string {
	// Metadata line shown below the title in the selector list
	fam := familyOf(i.table.Descriptor)
	var famRendered string
	switch fam {
	case "POSSUM":
		famRendered = famPOSSUMStyle.Render(fam)
	case "iFeature":
		famRendered = famIFeatureStyle.Render(fam)
	default:
		famRendered = famUnknownStyle.Render(fam)
	}
	return fmt.Sprintf("%s    %d proteins    %d columns", famRendered, i.table.Rows, i.table.Columns)
}

type mode int

const (
	modeTable mode = iota
	modeProteins
	modeSummary
)

func (m mode) String() string {
	switch m {
	case modeTable:
		return "📋 Table"
	case modeProteins:
		return "🧬 Proteins"
	case modeSummary:
		return "📈 Summary"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	tables        []FeatureTable
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalTables   int
	selectedIndex int
}

func newModel(tables []FeatureTable) model {
	items := make([]list.Item, len(tables))
	for i, tbl := range tables {
		items[i] = listItem{table: tbl}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Feature Tables"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		tables:      tables,
		currentMode: modeTable,
		totalTables: len(tables),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// cycleMode steps through the view modes in order, wrapping around.
func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		listWidth := msg.Width / 3
		listHeight := msg.Height - 4

		m.list.SetWidth(listWidth)
		m.list.SetHeight(listHeight)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeTable
			return m, nil

		case "2":
			m.currentMode = modeProteins
			return m, nil

		case "3":
			m.currentMode = modeSummary
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	listWidth := m.width / 3

	return containerStyle.
		Width(listWidth - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.tables) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No feature tables available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No table selected")
	}

	tbl := selectedItem.(listItem).table

	header := titleStyle.Render(fmt.Sprintf("%s - %s", tbl.Descriptor, tbl.Set))

	label := lipgloss.NewStyle().Foreground(mutedColor)
	fam := familyOf(tbl.Descriptor)
	var famStyle lipgloss.Style
	switch fam {
	case "POSSUM":
		famStyle = famPOSSUMStyle
	case "iFeature":
		famStyle = famIFeatureStyle
	default:
		famStyle = famUnknownStyle
	}
	meta := label.Render("Family: ") + famStyle.Render(fam) +
		label.Render("    ") + famStyle.Render(fmt.Sprintf("Proteins: %d", tbl.Rows)) +
		label.Render("    ") + famStyle.Render(fmt.Sprintf("Columns: %d", tbl.Columns))

	content := tableStyle.
		Width(rightWidth - 6).
		Render(strings.Join(m.buildRightLines(tbl), "\n"))

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		meta,
		"",
		content,
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

// buildRightLines renders the right panel body for the current mode. Rows
// beyond the preview cap are summarized in a trailing line.
func (m model) buildRightLines(tbl FeatureTable) []string {
	switch m.currentMode {
	case modeProteins:
		lines := make([]string, 0, len(tbl.Preview))
		for _, row := range tbl.Preview {
			id, _, _ := strings.Cut(row, "\t")
			lines = append(lines, idStyle.Render(id))
		}
		if tbl.Rows > len(tbl.Preview) {
			lines = append(lines, fmt.Sprintf("... and %d more", tbl.Rows-len(tbl.Preview)))
		}
		return lines

	case modeSummary:
		return []string{
			fmt.Sprintf("descriptor: %s", tbl.Descriptor),
			fmt.Sprintf("family:     %s", familyOf(tbl.Descriptor)),
			fmt.Sprintf("proteins:   %d", tbl.Rows),
			fmt.Sprintf("columns:    %d", tbl.Columns),
			fmt.Sprintf("path:       %s", tbl.Path),
		}

	default:
		width := m.width*2/3 - 8
		if width < 20 {
			width = 20
		}
		lines := make([]string, 0, len(tbl.Preview))
		for _, row := range tbl.Preview {
			id, rest, _ := strings.Cut(row, "\t")
			rest = strings.ReplaceAll(rest, "\t", "  ")
			maxRest := width - len(id) - 2
			if maxRest < 0 {
				maxRest = 0
			}
			if len(rest) > maxRest {
				rest = rest[:maxRest]
			}
			lines = append(lines, idStyle.Render(id)+"  "+rest)
		}
		if tbl.Rows > len(tbl.Preview) {
			lines = append(lines, fmt.Sprintf("... and %d more rows", tbl.Rows-len(tbl.Preview)))
		}
		return lines
	}
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("📊 %d/%d tables", m.selectedIndex+1, m.totalTables)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help • 'q' to quit"

	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `🧬 Feature Table Browser - Help

Navigation:
  ↑/↓, j/k     Navigate list
  /            Filter tables
  Tab          Cycle view modes

View Modes:
  1            Show table preview
  2            Show protein identifiers
  3            Show table summary

General:
  h            Toggle this help
  q, Ctrl+C    Quit application

Current Mode: ` + m.currentMode.String() + `
Total Tables: ` + fmt.Sprintf("%d", m.totalTables) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func main() {
	dir := flag.String("dir", feature.DefaultOutputRoot, "output root to browse")
	flag.Parse()

	tables, err := loadTables(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(tables) == 0 {
		fmt.Fprintf(os.Stderr, "no feature tables under %s\n", *dir)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(tables), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}

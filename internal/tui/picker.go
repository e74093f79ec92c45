package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dlnacast/dlnacast/internal/ssdp"
)

// Messages for async operations
type scanStartMsg struct{}
type scanCompleteMsg struct {
	devices []*ssdp.Device
	err     error
}

// pickerKeyMap defines key bindings for the picker screen
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Rescan key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Rescan, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Rescan, k.Quit},
	}
}

// deviceItem wraps a Device for use with bubbles/list
type deviceItem struct {
	device *ssdp.Device
}

// FilterValue implements list.Item; devices filter by name and IP
func (d deviceItem) FilterValue() string {
	return d.device.Name + " " + d.device.IP
}

// Title returns the device name for list display
func (d deviceItem) Title() string {
	return d.device.Name
}

// Description returns device details for list display
func (d deviceItem) Description() string {
	if d.device.HasAVTransport {
		return fmt.Sprintf("%s • playback control available", d.device.Endpoint())
	}
	return fmt.Sprintf("%s • no playback control", d.device.Endpoint())
}

// deviceDelegate renders one device card in the list
type deviceDelegate struct {
	width int
}

func (d deviceDelegate) Height() int { return 5 } // Card height including borders

func (d deviceDelegate) Spacing() int { return 1 }

func (d deviceDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d deviceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	di, ok := item.(deviceItem)
	if !ok {
		return
	}

	device := di.device
	selected := index == m.Index()

	var content strings.Builder
	if selected {
		content.WriteString(SelectedItemStyle.Render("→ " + device.Name))
	} else {
		content.WriteString("  " + device.Name)
	}
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  Endpoint: %s\n", device.Endpoint()))

	if device.HasAVTransport {
		status := lipgloss.NewStyle().Foreground(SecondaryColor).Render("AVTransport")
		content.WriteString("  Control:  " + status)
	} else {
		status := lipgloss.NewStyle().Foreground(WarningColor).Render("none")
		content.WriteString("  Control:  " + status)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Padding(0, 2).
		MarginLeft(2)

	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(SecondaryColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// PickerModel is the bubbletea model for the device picker
type PickerModel struct {
	scanner *ssdp.Scanner

	scanning   bool
	deviceList list.Model
	choice     *ssdp.Device
	err        error

	width   int
	height  int
	spinner spinner.Model
	help    help.Model
	keys    pickerKeyMap
}

// NewPickerModel creates a picker that scans with the given scanner
func NewPickerModel(scanner *ssdp.Scanner) PickerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	// Size the cards from the real terminal width so the first render is
	// correct before any WindowSizeMsg arrives.
	width := GetTerminalWidth()
	delegate := deviceDelegate{width: width}
	deviceList := list.New([]list.Item{}, delegate, 0, 0)
	deviceList.Title = "Discovered Renderers"
	deviceList.SetShowStatusBar(false)
	deviceList.SetFilteringEnabled(true)
	deviceList.Styles.Title = TitleStyle

	keys := pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	return PickerModel{
		scanner:    scanner,
		deviceList: deviceList,
		width:      width,
		spinner:    s,
		help:       help.New(),
		keys:       keys,
	}
}

// Init starts the first scan
func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return scanStartMsg{} },
		m.scanCmd(),
		m.spinner.Tick,
	)
}

// scanCmd runs one blocking discovery call off the UI loop
func (m PickerModel) scanCmd() tea.Cmd {
	scanner := m.scanner
	return func() tea.Msg {
		devices, err := scanner.Discover()
		return scanCompleteMsg{devices: devices, err: err}
	}
}

// Update handles messages and updates the model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list handle keys while its filter input is active
		if m.deviceList.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Enter):
			if item, ok := m.deviceList.SelectedItem().(deviceItem); ok {
				m.choice = item.device
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Rescan):
			if !m.scanning {
				return m, tea.Batch(
					func() tea.Msg { return scanStartMsg{} },
					m.scanCmd(),
					m.spinner.Tick,
				)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.deviceList.SetDelegate(deviceDelegate{width: msg.Width})
		m.deviceList.SetWidth(msg.Width - 4)
		m.deviceList.SetHeight(msg.Height - 8) // Leave room for header/footer

	case scanStartMsg:
		m.scanning = true
		m.err = nil

	case scanCompleteMsg:
		m.scanning = false
		m.err = msg.err
		items := make([]list.Item, len(msg.devices))
		for i, dev := range msg.devices {
			items[i] = deviceItem{device: dev}
		}
		m.deviceList.SetItems(items)

	case spinner.TickMsg:
		if m.scanning {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.scanning {
		m.deviceList, cmd = m.deviceList.Update(msg)
	}
	return m, cmd
}

// View renders the picker
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("dlnacast"))
	b.WriteString("\n")

	switch {
	case m.scanning:
		b.WriteString(fmt.Sprintf("%s Scanning for renderers (%s)...\n",
			m.spinner.View(), m.scanner.Timeout))

	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Discovery failed: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("r rescan • q quit"))

	case len(m.deviceList.Items()) == 0:
		b.WriteString(SubtitleStyle.Render("No renderers found."))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("r rescan • q quit"))

	default:
		b.WriteString(m.deviceList.View())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// PickDevice runs the interactive picker and returns the selected device.
// A nil device with nil error means the user quit without choosing.
func PickDevice(scanner *ssdp.Scanner) (*ssdp.Device, error) {
	p := tea.NewProgram(NewPickerModel(scanner))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok {
		return nil, fmt.Errorf("picker returned unexpected model type")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.choice, nil
}

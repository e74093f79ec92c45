package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlnacast/dlnacast/internal/ssdp"
)

func testDevices() []*ssdp.Device {
	return []*ssdp.Device{
		{Name: "Living Room TV", IP: "10.0.0.5", Port: 49152, HasAVTransport: true},
		{Name: "Kitchen Speaker", IP: "10.0.0.6", Port: 80},
	}
}

func TestDeviceItem(t *testing.T) {
	item := deviceItem{device: testDevices()[0]}

	if item.Title() != "Living Room TV" {
		t.Errorf("Title() = %q, want %q", item.Title(), "Living Room TV")
	}
	if !strings.Contains(item.FilterValue(), "Living Room TV") ||
		!strings.Contains(item.FilterValue(), "10.0.0.5") {
		t.Errorf("FilterValue() = %q, should contain name and IP", item.FilterValue())
	}
	if !strings.Contains(item.Description(), "10.0.0.5:49152") {
		t.Errorf("Description() = %q, should contain the endpoint", item.Description())
	}
	if !strings.Contains(item.Description(), "playback control available") {
		t.Errorf("Description() = %q, should flag AVTransport support", item.Description())
	}

	noControl := deviceItem{device: testDevices()[1]}
	if !strings.Contains(noControl.Description(), "no playback control") {
		t.Errorf("Description() = %q, should flag missing AVTransport", noControl.Description())
	}
}

func TestGetTerminalWidth_Bounds(t *testing.T) {
	width := GetTerminalWidth()
	if width < MinTerminalWidth || width > MaxContentWidth {
		t.Errorf("GetTerminalWidth() = %d, want within [%d, %d]",
			width, MinTerminalWidth, MaxContentWidth)
	}
}

func TestNewPickerModel_InitialWidth(t *testing.T) {
	model := NewPickerModel(ssdp.NewScanner())

	// The picker must be sized from the terminal before the first
	// WindowSizeMsg, not left at a placeholder width.
	if model.width != GetTerminalWidth() {
		t.Errorf("model.width = %d, want terminal width %d",
			model.width, GetTerminalWidth())
	}
	if model.width < MinTerminalWidth {
		t.Errorf("model.width = %d, want at least %d", model.width, MinTerminalWidth)
	}
}

func TestPickerModel_ScanComplete(t *testing.T) {
	model := NewPickerModel(ssdp.NewScanner())

	updated, _ := model.Update(scanStartMsg{})
	m := updated.(PickerModel)
	if !m.scanning {
		t.Error("model should be scanning after scanStartMsg")
	}

	updated, _ = m.Update(scanCompleteMsg{devices: testDevices()})
	m = updated.(PickerModel)
	if m.scanning {
		t.Error("model should not be scanning after scanCompleteMsg")
	}
	if len(m.deviceList.Items()) != 2 {
		t.Errorf("list has %d items, want 2", len(m.deviceList.Items()))
	}
}

func TestPickerModel_EnterSelectsDevice(t *testing.T) {
	model := NewPickerModel(ssdp.NewScanner())

	updated, _ := model.Update(scanCompleteMsg{devices: testDevices()})
	m := updated.(PickerModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PickerModel)

	if m.choice == nil {
		t.Fatal("enter should select the highlighted device")
	}
	if m.choice.Name != "Living Room TV" {
		t.Errorf("choice = %q, want first device", m.choice.Name)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPickerModel_QuitWithoutChoice(t *testing.T) {
	model := NewPickerModel(ssdp.NewScanner())

	updated, _ := model.Update(scanCompleteMsg{devices: testDevices()})
	m := updated.(PickerModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(PickerModel)

	if m.choice != nil {
		t.Error("quit should not select a device")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestPickerModel_View(t *testing.T) {
	model := NewPickerModel(ssdp.NewScanner())

	t.Run("scanning", func(t *testing.T) {
		updated, _ := model.Update(scanStartMsg{})
		m := updated.(PickerModel)
		if !strings.Contains(m.View(), "Scanning") {
			t.Error("scanning view should mention scanning")
		}
	})

	t.Run("empty result", func(t *testing.T) {
		updated, _ := model.Update(scanCompleteMsg{})
		m := updated.(PickerModel)
		if !strings.Contains(m.View(), "No renderers found") {
			t.Error("empty view should say no renderers were found")
		}
	})
}

package main

import (
	"draw-guess/domain/game"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	defaultServer := os.Getenv("VIEWER_SERVER_ADDR")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	server := flag.String("server", defaultServer, "Base URL of the draw-guess server")
	roomID := flag.String("room", "", "Show the players of a single room")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	baseURL := strings.TrimSuffix(*server, "/")

	if *roomID != "" {
		var view game.RoomView
		if err := fetch(client, baseURL+"/api/rooms/"+*roomID, &view); err != nil {
			log.Fatal(err)
		}
		renderRoom(view)
		return
	}

	var rooms struct {
		List []game.RoomListing `json:"list"`
	}
	if err := fetch(client, baseURL+"/api/rooms", &rooms); err != nil {
		log.Fatal(err)
	}
	renderRooms(rooms.List)
}

func fetch(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("cannot reach server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s answered %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderRooms(rooms []game.RoomListing) {
	if len(rooms) == 0 {
		fmt.Println("No room")
		return
	}
	table := newTable("Room", "State", "Since")
	for _, room := range rooms {
		table.Append([]string{
			room.ID,
			colorState(room.State),
			time.Since(room.StateStartedAt).Truncate(time.Second).String(),
		})
	}
	table.Render()
	fmt.Printf("%d room(s)\n", len(rooms))
}

func renderRoom(view game.RoomView) {
	fmt.Printf("Room %s  %s  round %d\n", view.ID, colorState(view.State), view.Round)
	if view.Deadline != nil {
		fmt.Printf("Round ends in %s\n", time.Until(*view.Deadline).Truncate(time.Second))
	}

	table := newTable("Player", "Name", "Host")
	for _, player := range view.Players {
		host := ""
		if player.ID == view.HostID {
			host = color.Yellow.Render("★")
		}
		table.Append([]string{player.ID, player.Name, host})
	}
	table.Render()
	fmt.Printf("max %d players, review %.0fs, draw %.0fs, guess %.0fs\n",
		view.Config.MaxPlayers, view.Config.ReviewDuration, view.Config.DrawDuration, view.Config.GuestDuration)
}

func colorState(state game.State) string {
	switch state {
	case game.Pending:
		return color.Gray.Render(state.String())
	case game.Question:
		return color.Cyan.Render(state.String())
	case game.Draw:
		return color.Magenta.Render(state.String())
	case game.Guest:
		return color.Blue.Render(state.String())
	case game.Summary:
		return color.Green.Render(state.String())
	default:
		return color.Red.Render(state.String())
	}
}

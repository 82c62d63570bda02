package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/handlers"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
	_ "github.com/alouani-moncif/secret-word-society-replit/pb_migrations"
	"github.com/alouani-moncif/secret-word-society-replit/utils"
)

func main() {
	pb := pocketbase.New()

	cfg := utils.LoadConfig()

	metrics := services.NewMetrics()
	hub := services.NewHub(metrics)
	go hub.Run()

	roomManager := services.NewRoomManager(pb)
	wordService := services.NewWordService(pb)
	engine := services.NewGameEngine(pb, wordService)

	roomHandlers := handlers.NewRoomHandlers(roomManager)
	gameHandlers := handlers.NewGameHandlers(engine, roomManager)
	wsHandler := handlers.NewWSHandler(hub, roomManager, cfg.WSAllowedOrigins)

	// Any change to a room or its players pushes a fresh snapshot to every
	// socket subscribed to that room.
	broadcastRoomState := func(roomID string) {
		view, err := roomManager.GetRoomView(roomID)
		if err != nil {
			return
		}
		hub.BroadcastToRoom(roomID, &models.WSMessage{
			Type:    models.MsgTypeRoomState,
			RoomID:  roomID,
			Payload: view,
		})
	}

	pb.OnRecordAfterCreateSuccess("players").BindFunc(func(e *core.RecordEvent) error {
		broadcastRoomState(e.Record.GetString("room_id"))
		return e.Next()
	})
	pb.OnRecordAfterUpdateSuccess("players").BindFunc(func(e *core.RecordEvent) error {
		broadcastRoomState(e.Record.GetString("room_id"))
		return e.Next()
	})
	pb.OnRecordAfterDeleteSuccess("players").BindFunc(func(e *core.RecordEvent) error {
		broadcastRoomState(e.Record.GetString("room_id"))
		return e.Next()
	})
	pb.OnRecordAfterUpdateSuccess("rooms").BindFunc(func(e *core.RecordEvent) error {
		broadcastRoomState(e.Record.Id)
		return e.Next()
	})

	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.Bind(utils.SessionCookieMiddleware())

		se.Router.POST("/api/rooms", roomHandlers.CreateRoom)
		se.Router.POST("/api/rooms/join", roomHandlers.JoinRoom)
		se.Router.GET("/api/rooms/{id}", roomHandlers.RoomView)
		se.Router.POST("/api/rooms/{id}/kick", roomHandlers.KickPlayer)

		se.Router.POST("/api/rooms/{id}/start", gameHandlers.StartGame)
		se.Router.POST("/api/rooms/{id}/describe", gameHandlers.SubmitDescription)
		se.Router.POST("/api/rooms/{id}/vote", gameHandlers.SubmitVote)
		se.Router.POST("/api/rooms/{id}/new-game", gameHandlers.NewGame)

		se.Router.GET("/ws/{roomId}", wsHandler.HandleWebSocket)

		se.Router.GET("/api/metrics", handlers.HandleMetrics(hub))
		se.Router.GET("/api/health", handlers.HandleHealth(hub))

		return se.Next()
	})

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"priorizai-backend/internal/ai"
	"priorizai-backend/internal/briefai"
	"priorizai-backend/internal/calmai"
	"priorizai-backend/internal/config"
	"priorizai-backend/internal/priorize"
	"priorizai-backend/internal/session"
	"priorizai-backend/internal/webutil"
)

type serviceInfo struct {
	OK      bool     `json:"ok"`
	Service string   `json:"service"`
	Routes  []string `json:"routes"`
}

// ----------------------
//        MAIN
// ----------------------

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY is empty, AI routes will return errors until it is set")
	}

	client := ai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL,
		time.Duration(cfg.OpenAITimeout)*time.Second)

	prioritizer := priorize.NewPrioritizer(client)
	priorizeHandler := priorize.NewHandler(prioritizer)
	sessionHandler := session.NewHandler(session.NewStore(), prioritizer)
	calmHandler := calmai.NewHandler(client)
	briefHandler := briefai.NewHandler(client)

	mux := http.NewServeMux()

	// Service banner
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		webutil.WriteJSON(w, http.StatusOK, serviceInfo{
			OK:      true,
			Service: "priorizai-backend",
			Routes: []string{
				"GET /catalogs",
				"POST /prioritize",
				"POST /calmai",
				"POST /briefai",
				"POST /session",
				"GET /session/{id}",
				"POST /session/{id}/tasks",
				"POST /session/{id}/fields",
				"POST /session/{id}/prioritize",
			},
		})
	})

	// Health endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- ONE-SHOT API (stateless clients) -----
	mux.HandleFunc("GET /catalogs", priorizeHandler.Catalogs)
	mux.HandleFunc("POST /prioritize", priorizeHandler.Prioritize)
	mux.HandleFunc("POST /calmai", calmHandler.Advise)
	mux.HandleFunc("POST /briefai", briefHandler.Generate)

	// ----- SESSION API (server-held form state) -----
	mux.HandleFunc("POST /session", sessionHandler.Create)
	mux.HandleFunc("GET /session/{id}", sessionHandler.Get)
	mux.HandleFunc("POST /session/{id}/tasks", sessionHandler.AddTask)
	mux.HandleFunc("POST /session/{id}/fields", sessionHandler.SetField)
	mux.HandleFunc("POST /session/{id}/prioritize", sessionHandler.Submit)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	handler := c.Handler(mux)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("🚀 PriorizAI API is running on %s (model: %s)", addr, cfg.OpenAIModel)
	log.Fatal(http.ListenAndServe(addr, handler))
}

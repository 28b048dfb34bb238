package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/tunepack/codegen"
	"github.com/jsphweid/tunepack/constants"
	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/pipeline"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveLog logrus.FieldLogger = newLogger()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves POST /encode, taking a midi file as the body`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := constants.GetListenAddr()
		serveLog.WithField("addr", addr).Info("Listening")
		return http.ListenAndServe(addr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/encode", HandleEncode).Methods("POST")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleEncode(w http.ResponseWriter, r *http.Request) {
	runId := uuid.New().String()
	log := serveLog.WithField("run", runId)

	body := http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	c, err := pipeline.RunMidi(body, pipeline.DefaultOptions(), log)
	if err != nil {
		log.WithError(err).Warn("Could not encode upload")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("X-Run-Id", runId)
	if r.URL.Query().Get("format") == "header" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := codegen.WriteHeader(w, c); err != nil {
			log.WithError(err).Warn("Could not write header")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.EncodeResponse{RunId: runId, Track: *c})
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	ecoGrpc "liyu1981.xyz/ecotrack-service/pkg/grpc"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

var maxUsers int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *ecoGrpc.FootprintServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	userIDs := make([]string, maxUsers)
	for i := range maxUsers {
		userIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v user IDs\n", maxUsers)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = ecoGrpc.NewFootprintServiceClient(conn)

	fmt.Printf("gRPC client connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			putGoals(userIDs[i])
			fmt.Printf("\rstored goals for user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rstored goals for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			doAction(userIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*4)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func pick[T any](items []T) T {
	rndMu.Lock()
	defer rndMu.Unlock()
	return items[rnd.Intn(len(items))]
}

func send(method, path, userID string, payload any) {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), &body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("\n%s %s answered %v\n", method, path, resp.Status)
	}
}

func putGoals(userID string) {
	send(http.MethodPut, "/api/profile/goals", userID, map[string]float64{
		"carbonFootprintGoal":  rndFloat64(100, 2000, 0),
		"plasticReductionGoal": rndFloat64(5, 50, 0),
	})
}

func doAction(userID string) {
	actions := []func(){
		genActivityAction(userID),
		genPlasticAction(userID),
		genRenewableAction(userID),
		genSummaryAction(userID),
	}
	actionNames := []string{
		"Activity",
		"PlasticUsage",
		"RenewableEnergy",
		"Summary",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for user %v", actionNames[index], userID)
		time.Sleep(time.Duration(100+rndFloat64(0, 1000, 0)) * time.Millisecond)
	}
}

// genActivityAction either stores a trip over HTTP or only prices it over
// gRPC.
func genActivityAction(userID string) func() {
	return func() {
		mode := pick(models.AllTransportModes)
		distance := rndFloat64(1, 400, 1)

		if flipCoin() {
			send(http.MethodPost, "/api/carbon-activities", userID, map[string]any{
				"activityType":  models.ActivityTypeTransportation,
				"transportMode": mode,
				"distance":      distance,
			})
			return
		}

		in, _ := structpb.NewStruct(map[string]any{
			"userId":        userID,
			"activityType":  string(models.ActivityTypeTransportation),
			"transportMode": string(mode),
			"distance":      distance,
		})
		if _, err := grpcClient.CalculateEmissions(context.Background(), in); err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

func genPlasticAction(userID string) func() {
	return func() {
		send(http.MethodPost, "/api/plastic-usage", userID, map[string]any{
			"plasticType": pick(models.AllPlasticTypes),
			"quantity":    rndFloat64(1, 30, 0),
			"recycled":    flipCoin(),
		})
	}
}

func genRenewableAction(userID string) func() {
	return func() {
		send(http.MethodPost, "/api/renewable-energy", userID, map[string]any{
			"energySource":    pick(models.AllEnergySources),
			"energyGenerated": rndFloat64(1, 200, 1),
		})
	}
}

func genSummaryAction(userID string) func() {
	return func() {
		send(http.MethodGet, "/api/carbon-footprint/summary?period="+pick([]string{"week", "month", "year"}), userID, nil)
	}
}

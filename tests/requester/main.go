package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/internal/middleware"
)

const baseURL = "http://localhost:8080"

// requester keeps the read endpoints busy so latency dashboards have something to show.
func main() {
	cfg := config.Auth{Secret: os.Getenv("JWT_SECRET"), Issuer: os.Getenv("JWT_ISSUER")}

	restaurant := entities.Actor{ID: "rest-1", Role: entities.RoleRestaurant}
	courier := entities.Actor{ID: "courier-1", Role: entities.RoleCourier}

	restaurantToken, err := middleware.IssueToken(cfg, restaurant)
	if err != nil {
		fmt.Println("failed to issue token:", err)
		os.Exit(1)
	}
	courierToken, err := middleware.IssueToken(cfg, courier)
	if err != nil {
		fmt.Println("failed to issue token:", err)
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for n, i := rand.Intn(10), 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if rand.Intn(3) == 0 {
					doRequest(baseURL+"/deliveries/assignable?limit=20", courierToken)
					return
				}
				doRequest(revenueURL(restaurant.ID), restaurantToken)
			}()
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func revenueURL(restaurantID string) string {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -rand.Intn(90))

	granularity := "day"
	if rand.Intn(4) == 0 {
		granularity = "month"
	}

	return fmt.Sprintf("%s/restaurants/%s/revenue?from=%s&to=%s&granularity=%s",
		baseURL, restaurantID, from.Format(time.DateOnly), to.Format(time.DateOnly), granularity)
}

func doRequest(url, token string) {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}

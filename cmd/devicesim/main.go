// Command devicesim plays the child device on the broker: it answers permission and
// location requests, streams fixes while watched, reports geofence crossings and answers
// pings and check-ins.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/paulmach/orb"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/geo"
	link "guardian/internal/infra/mqtt"
)

type device struct {
	client mqtt.Client
	topics link.Topics
	grant  map[string]entity.PermissionStatus

	center orb.Point
	orbit  float64
	step   float64

	mu        sync.Mutex
	bearing   float64
	watching  bool
	regions   []entity.GeofenceRegion
	insideIDs map[string]bool
}

func main() {
	brokerAddr := flag.String("broker", "tcp://localhost:1883", "MQTT broker address, e.g. tcp://localhost:1883")
	prefix := flag.String("topic-prefix", "guardian", "Topic prefix shared with the guardian service")
	deviceID := flag.String("device-id", "child-phone-1", "Device identifier")
	lat := flag.Float64("lat", 25.0330, "Latitude of the walk center")
	lng := flag.Float64("lng", 121.5654, "Longitude of the walk center")
	orbit := flag.Float64("orbit", 400, "Radius of the simulated walk in meters")
	step := flag.Float64("step", 10, "Degrees walked along the orbit per interval")
	interval := flag.Duration("interval", 5*time.Second, "Interval between location fixes")
	denyBackground := flag.Bool("deny-background", false, "Deny the background location permission")
	denyForeground := flag.Bool("deny-foreground", false, "Deny the foreground location permission")

	flag.Parse()

	grant := map[string]entity.PermissionStatus{
		link.PermissionForeground:   entity.PermissionGranted,
		link.PermissionBackground:   entity.PermissionGranted,
		link.PermissionNotification: entity.PermissionGranted,
	}
	if *denyForeground {
		grant[link.PermissionForeground] = entity.PermissionDenied
	}
	if *denyBackground {
		grant[link.PermissionBackground] = entity.PermissionDenied
	}

	clientID := fmt.Sprintf("%s-simulator-%d", *deviceID, time.Now().UnixNano())
	opts := mqtt.NewClientOptions().AddBroker(*brokerAddr).SetClientID(clientID)
	opts = opts.SetOrderMatters(false)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("failed to connect to broker: %v", token.Error())
	}
	log.Printf("connected to MQTT broker %s as %s", *brokerAddr, clientID)

	d := &device{
		client:    client,
		topics:    link.NewTopics(*prefix, *deviceID),
		grant:     grant,
		center:    orb.Point{*lng, *lat},
		orbit:     *orbit,
		step:      *step,
		insideIDs: make(map[string]bool),
	}
	d.subscribe()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Print("received shutdown signal, disconnecting")
			client.Disconnect(250)
			return
		case <-ticker.C:
			d.walk()
		}
	}
}

func (d *device) subscribe() {
	handlers := map[string]mqtt.MessageHandler{
		d.topics.PermissionRequest(): d.onPermissionRequest,
		d.topics.LocationRequest():   d.onFixRequest,
		d.topics.LocationWatch():     d.onWatch,
		d.topics.Geofences():         d.onGeofences,
		d.topics.Alerts():            d.onAlert,
		d.topics.Pings():             d.onPing,
		d.topics.CheckIns():          d.onCheckIn,
	}

	for topic, handler := range handlers {
		if token := d.client.Subscribe(topic, 1, handler); token.Wait() && token.Error() != nil {
			log.Fatalf("failed to subscribe to %s: %v", topic, token.Error())
		}
	}
}

// position returns the current point on the orbit.
func (d *device) position() orb.Point {
	d.mu.Lock()
	defer d.mu.Unlock()

	return geo.Destination(d.center, d.bearing, d.orbit)
}

func (d *device) walk() {
	d.mu.Lock()
	d.bearing += d.step
	if d.bearing >= 360 {
		d.bearing -= 360
	}
	watching := d.watching
	d.mu.Unlock()

	point := d.position()
	d.checkGeofences(point)

	if !watching {
		return
	}

	d.publish(d.topics.Location(), entity.LocationState{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
		Timestamp: time.Now().UTC(),
	})
}

func (d *device) checkGeofences(point orb.Point) {
	d.mu.Lock()
	var transitions []entity.GeofenceTransition
	for _, region := range d.regions {
		inside := geo.Contains(orb.Point{region.Longitude, region.Latitude}, region.Radius, point)
		if inside == d.insideIDs[region.Identifier] {
			continue
		}
		d.insideIDs[region.Identifier] = inside

		eventType := entity.SafeZoneEventExit
		if inside {
			eventType = entity.SafeZoneEventEntry
		}
		transitions = append(transitions, entity.GeofenceTransition{
			Type:      eventType,
			Region:    region,
			Timestamp: time.Now().UTC(),
		})
	}
	d.mu.Unlock()

	for _, transition := range transitions {
		log.Printf("geofence %s %s", transition.Type, transition.Region.Identifier)
		d.publish(d.topics.GeofenceEvents(), transition)
	}
}

func (d *device) onPermissionRequest(_ mqtt.Client, msg mqtt.Message) {
	var request link.PermissionRequest
	if !decode(msg, &request) {
		return
	}

	status, ok := d.grant[request.Kind]
	if !ok {
		status = entity.PermissionUndetermined
	}
	log.Printf("permission %s -> %s", request.Kind, status)

	d.publish(d.topics.PermissionReply(), link.PermissionReply{
		RequestID: request.RequestID,
		Kind:      request.Kind,
		Status:    status,
	})
}

func (d *device) onFixRequest(_ mqtt.Client, msg mqtt.Message) {
	var request link.FixRequest
	if !decode(msg, &request) {
		return
	}

	reply := link.FixReply{RequestID: request.RequestID}
	if d.grant[link.PermissionForeground] != entity.PermissionGranted {
		reply.Error = "location permission denied"
	} else {
		point := d.position()
		reply.Latitude = point.Lat()
		reply.Longitude = point.Lon()
		reply.Timestamp = time.Now().UTC()
	}

	d.publish(d.topics.LocationReply(), reply)
}

func (d *device) onWatch(_ mqtt.Client, msg mqtt.Message) {
	var command link.WatchCommand
	if !decode(msg, &command) {
		return
	}

	d.mu.Lock()
	d.watching = command.Active
	d.mu.Unlock()
	log.Printf("location stream active=%t", command.Active)
}

func (d *device) onGeofences(_ mqtt.Client, msg mqtt.Message) {
	var command link.GeofenceCommand
	if !decode(msg, &command) {
		return
	}

	point := d.position()

	d.mu.Lock()
	d.regions = command.Regions
	d.insideIDs = make(map[string]bool, len(command.Regions))
	// Regions start in their current state so registration does not report a crossing
	for _, region := range command.Regions {
		d.insideIDs[region.Identifier] = geo.Contains(orb.Point{region.Longitude, region.Latitude}, region.Radius, point)
	}
	d.mu.Unlock()
	log.Printf("registered %d geofences", len(command.Regions))
}

func (d *device) onAlert(_ mqtt.Client, msg mqtt.Message) {
	var command link.AlertCommand
	if decode(msg, &command) {
		log.Printf("ALERT %s: %s", command.Title, command.Message)
	}
}

func (d *device) onPing(_ mqtt.Client, msg mqtt.Message) {
	var ping entity.DevicePingRequest
	if !decode(msg, &ping) {
		return
	}
	log.Printf("ping %s (%s) %s", ping.ID, ping.Type, ping.Message)

	ack := link.PingAck{PingID: ping.ID}
	if ping.Type == entity.DevicePingLocation {
		point := d.position()
		ack.Location = &entity.Coordinate{Latitude: point.Lat(), Longitude: point.Lon()}
	}
	d.publish(d.topics.PingAcks(), ack)
}

func (d *device) onCheckIn(_ mqtt.Client, msg mqtt.Message) {
	var request entity.CheckInRequest
	if !decode(msg, &request) {
		return
	}
	log.Printf("check-in requested: %s", request.Message)

	point := d.position()
	d.publish(d.topics.CheckInReplies(), link.CheckInReply{
		CheckInID: request.ID,
		Location: &entity.CheckInLocation{
			Latitude:  point.Lat(),
			Longitude: point.Lon(),
			PlaceName: "Simulated walk",
		},
	})
}

func (d *device) publish(topic string, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("failed to encode payload: %v", err)
		return
	}

	token := d.client.Publish(topic, 1, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Printf("publish error on %s: %v", topic, err)
	}
}

func decode(msg mqtt.Message, target any) bool {
	if err := json.Unmarshal(msg.Payload(), target); err != nil {
		log.Printf("failed to decode %s: %v", msg.Topic(), err)
		return false
	}

	return true
}
